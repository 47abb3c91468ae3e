package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hospital-ops/client/dashboard"
)

var profileUpdateFlags struct {
	phone   string
	email   string
	address string
	city    string
}

func newPatientCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Patient profile and medical records",
	}

	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		RunE:  runPatientProfile,
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Update contact details on your profile",
		RunE:  runPatientUpdate,
	}
	update.Flags().StringVar(&profileUpdateFlags.phone, "phone", "", "Phone number")
	update.Flags().StringVar(&profileUpdateFlags.email, "email", "", "Email address")
	update.Flags().StringVar(&profileUpdateFlags.address, "address", "", "Street address")
	update.Flags().StringVar(&profileUpdateFlags.city, "city", "", "City")

	records := &cobra.Command{
		Use:   "records",
		Short: "List your medical records",
		RunE:  runPatientRecords,
	}

	cmd.AddCommand(profile, update, records)
	return cmd
}

func runPatientProfile(cmd *cobra.Command, args []string) error {
	if err := requireRole("patient"); err != nil {
		return err
	}

	p := dashboard.NewPatient(client)
	if err := p.LoadProfile(cmd.Context()); err != nil {
		return err
	}
	prof := p.Profile()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:     %s\n", prof.Name)
	fmt.Fprintf(out, "MRN:      %s\n", prof.MedicalRecordNumber)
	fmt.Fprintf(out, "Phone:    %s\n", prof.Phone)
	fmt.Fprintf(out, "Email:    %s\n", prof.Email)
	if prof.Address != "" {
		fmt.Fprintf(out, "Address:  %s, %s %s %s\n", prof.Address, prof.City, prof.State, prof.ZipCode)
	}
	if prof.BloodType != "" {
		fmt.Fprintf(out, "Blood:    %s\n", prof.BloodType)
	}
	if prof.Allergies != "" {
		fmt.Fprintf(out, "Allergies: %s\n", prof.Allergies)
	}
	if prof.EmergencyContactName != "" {
		fmt.Fprintf(out, "Emergency: %s (%s) %s\n",
			prof.EmergencyContactName, prof.EmergencyContactRelationship, prof.EmergencyContactPhone)
	}
	return nil
}

func runPatientUpdate(cmd *cobra.Command, args []string) error {
	if err := requireRole("patient"); err != nil {
		return err
	}

	p := dashboard.NewPatient(client)
	if err := p.LoadProfile(cmd.Context()); err != nil {
		return err
	}

	prof := p.Profile()
	if cmd.Flags().Changed("phone") {
		prof.Phone = profileUpdateFlags.phone
	}
	if cmd.Flags().Changed("email") {
		prof.Email = profileUpdateFlags.email
	}
	if cmd.Flags().Changed("address") {
		prof.Address = profileUpdateFlags.address
	}
	if cmd.Flags().Changed("city") {
		prof.City = profileUpdateFlags.city
	}

	if err := p.UpdateProfile(cmd.Context(), prof); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
	return nil
}

func runPatientRecords(cmd *cobra.Command, args []string) error {
	if err := requireRole("patient"); err != nil {
		return err
	}

	p := dashboard.NewPatient(client)
	if err := p.LoadProfile(cmd.Context()); err != nil {
		return err
	}
	records, err := p.MedicalRecords(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load medical records: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No medical records yet.")
		return nil
	}
	for _, r := range records {
		fmt.Fprintf(out, "%s  %s  %s\n", r.VisitDate, r.VisitType, r.ChiefComplaint)
		if r.Diagnosis != "" {
			fmt.Fprintf(out, "    diagnosis: %s\n", r.Diagnosis)
		}
		if r.Treatment != "" {
			fmt.Fprintf(out, "    treatment: %s\n", r.Treatment)
		}
	}
	return nil
}
