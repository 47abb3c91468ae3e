// Package thread handles the append-only comment and attachment lists that
// hang off ticket and work-order detail views. Both are refetched in full
// after every mutation; there is no incremental append.
package thread

import (
	"context"
	"fmt"
	"io"
	"strings"

	"hospital-ops/client/api"
	"hospital-ops/client/models"
)

// Thread is one entity's comment/attachment sub-view. The endpoint paths
// differ per dashboard, so the owner supplies them ready-made.
type Thread struct {
	client         *api.Client
	commentPath    string // POST target for new comments
	commentsPath   string // GET source for the full comment list
	attachmentPath string // multipart POST target
	detailPath     string // GET source for the detail record embedding attachments

	comments    []models.Comment
	attachments []models.Attachment
}

func New(client *api.Client, commentPath, commentsPath, attachmentPath, detailPath string) *Thread {
	return &Thread{
		client:         client,
		commentPath:    commentPath,
		commentsPath:   commentsPath,
		attachmentPath: attachmentPath,
		detailPath:     detailPath,
	}
}

// AddComment posts text and refetches the whole comment list. Blank or
// whitespace-only text is rejected before any request goes out.
func (t *Thread) AddComment(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return models.ErrEmptyComment
	}

	body := map[string]string{"comment": text}
	if err := t.client.Post(ctx, t.commentPath, body, nil); err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	return t.ReloadComments(ctx)
}

// UploadAttachment sends one file and refetches the attachment list. Files
// over the 10 MB cap never reach the network.
func (t *Thread) UploadAttachment(ctx context.Context, filename string, r io.Reader, size int64) error {
	if size > api.MaxUploadSize {
		return fmt.Errorf("%s: %w", filename, models.ErrFileTooLarge)
	}
	if err := t.client.Upload(ctx, t.attachmentPath, "file", filename, r, size); err != nil {
		return fmt.Errorf("upload attachment: %w", err)
	}
	return t.ReloadAttachments(ctx)
}

// ReloadComments refetches the full comment list, either from a dedicated
// comments endpoint or, when none exists, from the detail record that
// embeds them (work orders).
func (t *Thread) ReloadComments(ctx context.Context) error {
	if t.commentsPath == "" {
		var detail struct {
			Comments []models.Comment `json:"comments"`
		}
		if err := t.client.Get(ctx, t.detailPath, &detail); err != nil {
			return fmt.Errorf("load comments: %w", err)
		}
		t.comments = detail.Comments
		return nil
	}

	var comments []models.Comment
	if err := t.client.Get(ctx, t.commentsPath, &comments); err != nil {
		return fmt.Errorf("load comments: %w", err)
	}
	t.comments = comments
	return nil
}

// ReloadAttachments refetches the attachment list from the parent detail
// record, which embeds it.
func (t *Thread) ReloadAttachments(ctx context.Context) error {
	var detail struct {
		Attachments []models.Attachment `json:"attachments"`
	}
	if err := t.client.Get(ctx, t.detailPath, &detail); err != nil {
		return fmt.Errorf("load attachments: %w", err)
	}
	t.attachments = detail.Attachments
	return nil
}

func (t *Thread) Comments() []models.Comment       { return t.comments }
func (t *Thread) Attachments() []models.Attachment { return t.attachments }
