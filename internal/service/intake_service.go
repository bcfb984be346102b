package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/hemangjain17/TruthLens-backend/internal/models"
	"github.com/hemangjain17/TruthLens-backend/internal/storage"
)

// TopLimit is the page size of the recent-submissions query.
const TopLimit = 5

// scalar form fields carried verbatim into the record; field values
// larger than this are rejected.
const maxFieldBytes = 1 << 20

// SubmissionStore is the persistence surface the intake and query paths
// need. *repository.SubmissionRepo satisfies it.
type SubmissionStore interface {
	Insert(ctx context.Context, sub *models.Submission) (string, error)
	FindLatestByEmail(ctx context.Context, email string) (*models.Submission, error)
	FindTopByEmail(ctx context.Context, email string, limit int) ([]models.Submission, error)
}

// VideoStore places one uploaded file durably. *storage.VideoStore
// satisfies it.
type VideoStore interface {
	Save(r io.Reader, originalName string) (storage.StoredVideo, error)
}

type IntakeService struct {
	subs   SubmissionStore
	videos VideoStore
}

func NewIntakeService(subs SubmissionStore, videos VideoStore) *IntakeService {
	return &IntakeService{subs: subs, videos: videos}
}

// Intake consumes one upload-media form in stream order and persists the
// resulting submission. Scalar fields (name, email, textInput) and the
// JSON-encoded link fields (relatedLinks, videoLinks) are collected as
// their parts arrive; file parts whose media type starts with "video/"
// are placed durably in the order received, and all other file parts are
// dropped without error or record.
//
// Any failure — an unreadable part, a malformed link field, a file the
// store cannot place, a rejected insert — fails the whole request and
// nothing is persisted. Files already placed before the failure stay on
// disk.
func (s *IntakeService) Intake(ctx context.Context, form *multipart.Reader) (*models.Submission, error) {
	var name, email, textInput, relatedLinks, videoLinks string
	var uploaded []models.UploadedVideo

	for {
		part, err := form.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read form part: %w", err)
		}

		if part.FileName() == "" {
			val, err := readField(part)
			if err != nil {
				return nil, fmt.Errorf("read field %s: %w", part.FormName(), err)
			}
			switch part.FormName() {
			case "name":
				name = val
			case "email":
				email = val
			case "textInput":
				textInput = val
			case "relatedLinks":
				relatedLinks = val
			case "videoLinks":
				videoLinks = val
			}
			continue
		}

		// NextPart drains whatever a skipped part left unread.
		if !strings.HasPrefix(part.Header.Get("Content-Type"), "video/") {
			continue
		}
		stored, err := s.videos.Save(part, part.FileName())
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, models.UploadedVideo{
			Filename: stored.Filename,
			Path:     stored.Path,
			Size:     stored.Size,
		})
	}

	blogLinks, err := decodeLinks(relatedLinks)
	if err != nil {
		return nil, fmt.Errorf("decode relatedLinks: %w", err)
	}
	videoLinkList, err := decodeLinks(videoLinks)
	if err != nil {
		return nil, fmt.Errorf("decode videoLinks: %w", err)
	}

	sub := &models.Submission{
		Name:           optional(name),
		Email:          optional(email),
		TextInput:      optional(textInput),
		BlogLinks:      blogLinks,
		VideoLinks:     videoLinkList,
		UploadedVideos: uploaded,
		InputInsights:  buildInsights(textInput, blogLinks, videoLinkList, uploaded),
		CreatedAt:      time.Now().UTC(),
	}

	id, err := s.subs.Insert(ctx, sub)
	if err != nil {
		return nil, err
	}
	sub.ID = id
	return sub, nil
}

// Latest returns the newest submission for email, or nil when none exists.
func (s *IntakeService) Latest(ctx context.Context, email string) (*models.Submission, error) {
	return s.subs.FindLatestByEmail(ctx, email)
}

// Top returns up to TopLimit submissions for email, newest first.
func (s *IntakeService) Top(ctx context.Context, email string) ([]models.Submission, error) {
	return s.subs.FindTopByEmail(ctx, email, TopLimit)
}

func readField(part *multipart.Part) (string, error) {
	val, err := io.ReadAll(io.LimitReader(part, maxFieldBytes+1))
	if err != nil {
		return "", err
	}
	if len(val) > maxFieldBytes {
		return "", fmt.Errorf("value exceeds %d bytes", maxFieldBytes)
	}
	return string(val), nil
}

// optional maps an empty form value to an absent field.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// decodeLinks parses a JSON-encoded string array form field. An absent
// or empty field is nil; "[]" decodes to a present-but-empty list, which
// is stored as such.
func decodeLinks(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var links []string
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, err
	}
	return links, nil
}

// buildInsights renders the human-readable summary stored alongside the
// raw input. The format is fixed; clients parse nothing out of it but it
// must deterministically reflect the four source fields.
func buildInsights(textInput string, blogLinks, videoLinks []string, uploaded []models.UploadedVideo) string {
	text := textInput
	if text == "" {
		text = "No text provided"
	}
	return fmt.Sprintf(
		"Raw input submitted: Text - \"%s\", Blog Links - %d links, Video Links - %d links, Uploaded Videos - %d files",
		text, len(blogLinks), len(videoLinks), len(uploaded),
	)
}
