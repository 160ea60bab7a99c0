package share

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCreatedBy is attributed to links created while the admin guard is
// disabled.
const DefaultCreatedBy = "admin"

// Service implements link issuance, browsing, download resolution and
// revocation. Every request re-reads the store through the repository; the
// service holds no link state of its own.
type Service struct {
	repo    Repository
	root    string // absolute shareable root
	baseURL string
	hub     *Hub // optional; nil disables the event feed
}

func NewService(repo Repository, shareRoot, baseURL string, hub *Hub) (*Service, error) {
	root, err := filepath.Abs(shareRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve share root: %w", err)
	}
	return &Service{
		repo:    repo,
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		hub:     hub,
	}, nil
}

// newToken returns 128 bits of crypto-random hex, the public capability
// credential. Collisions are treated as negligible; no uniqueness re-check
// against the store.
func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ShareURL builds the distributable URL for a token.
func (s *Service) ShareURL(token string) string {
	return s.baseURL + "/share/" + token
}

// CreateLink validates the folder, mints id and token, and persists the
// record. The folder must exist and be a directory under the shareable
// root at creation time; it is never re-validated afterwards.
func (s *Service) CreateLink(ctx context.Context, in CreateLinkInput) (*ShareLink, error) {
	folder := strings.TrimSpace(in.FolderPath)
	if folder == "" {
		return nil, ErrEmptyFolderPath
	}

	abs, err := Resolve(s.root, "", folder)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(abs)
	if err != nil {
		return nil, ErrFolderNotFound
	}
	if !st.IsDir() {
		return nil, ErrNotDirectory
	}

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	createdBy := in.CreatedBy
	if createdBy == "" {
		createdBy = DefaultCreatedBy
	}

	link := &ShareLink{
		ID:          uuid.NewString(),
		Token:       token,
		FolderPath:  folder,
		Description: strings.TrimSpace(in.Description),
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		IsActive:    true,
	}

	if in.ExpiresInDays > 0 {
		expires := link.CreatedAt.Add(time.Duration(in.ExpiresInDays) * 24 * time.Hour)
		link.ExpiresAt = &expires
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		link.PasswordHash = string(hash)
	}

	if err := s.repo.Insert(ctx, link); err != nil {
		return nil, fmt.Errorf("save share link: %w", err)
	}

	s.hub.Broadcast(EventLinkCreated, map[string]string{
		"id":         link.ID,
		"folderPath": link.FolderPath,
		"createdBy":  link.CreatedBy,
	})

	return link, nil
}

// ListActive returns the links currently usable, in store order.
func (s *Service) ListActive(ctx context.Context) ([]*ShareLink, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	active := make([]*ShareLink, 0, len(links))
	for _, l := range links {
		if l.IsUsable(now) {
			active = append(active, l)
		}
	}
	return active, nil
}

// Revoke deactivates a link. Revoking an already-revoked link succeeds;
// the record still exists, only its content differs. There is no way back
// to active.
func (s *Service) Revoke(ctx context.Context, id string) error {
	link, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	link.IsActive = false
	if err := s.repo.Update(ctx, link); err != nil {
		return fmt.Errorf("save revocation: %w", err)
	}

	s.hub.Broadcast(EventLinkRevoked, map[string]string{"id": id})
	return nil
}

// lookupUsable maps every failure mode (unknown token, revoked, expired)
// to the same ErrLinkNotFound, then applies the optional password gate.
func (s *Service) lookupUsable(ctx context.Context, token, password string) (*ShareLink, error) {
	link, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, ErrLinkNotFound
	}
	if !link.IsUsable(time.Now()) {
		return nil, ErrLinkNotFound
	}
	if link.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(link.PasswordHash), []byte(password)) != nil {
			return nil, ErrPasswordRequired
		}
	}
	return link, nil
}

// resolve routes a request path through the sandbox, logging violations as
// a potential attack signal.
func (s *Service) resolve(link *ShareLink, subPath string) (string, error) {
	abs, err := Resolve(s.root, link.FolderPath, subPath)
	if err != nil {
		log.Printf("share_sandbox_violation link_id=%s path=%q", link.ID, subPath)
		s.hub.Broadcast(EventAccessDenied, map[string]string{
			"id":   link.ID,
			"path": subPath,
		})
		return "", err
	}
	return abs, nil
}

// Describe returns a directory listing or a file descriptor for a sub-path
// of the shared folder.
func (s *Service) Describe(ctx context.Context, token, subPath, password string) (*Browse, error) {
	link, err := s.lookupUsable(ctx, token, password)
	if err != nil {
		return nil, err
	}

	abs, err := s.resolve(link, subPath)
	if err != nil {
		return nil, err
	}

	st, err := os.Stat(abs)
	if err != nil {
		// shared folder (or a child) removed after link creation
		return nil, ErrPathNotFound
	}

	if st.IsDir() {
		return &Browse{
			Type:  "directory",
			Path:  subPath,
			Files: ListDirectory(abs),
			Share: &ShareMeta{
				Description: link.Description,
				CreatedAt:   link.CreatedAt,
				ExpiresAt:   link.ExpiresAt,
			},
		}, nil
	}

	return &Browse{
		Type: "file",
		Path: subPath,
		File: &FileDescriptor{
			Name:        st.Name(),
			Size:        st.Size(),
			ModifiedAt:  st.ModTime(),
			DownloadURL: fmt.Sprintf("/api/public-share/%s/download?path=%s", token, url.QueryEscape(subPath)),
		},
	}, nil
}

// ResolveDownload performs the same validity and sandbox checks as Describe
// and returns the file to stream. Directories are a validation error, not a
// stream.
func (s *Service) ResolveDownload(ctx context.Context, token, subPath, password string) (*Download, error) {
	link, err := s.lookupUsable(ctx, token, password)
	if err != nil {
		return nil, err
	}

	abs, err := s.resolve(link, subPath)
	if err != nil {
		return nil, err
	}

	st, err := os.Stat(abs)
	if err != nil {
		return nil, ErrPathNotFound
	}
	if st.IsDir() {
		return nil, ErrIsDirectory
	}

	s.hub.Broadcast(EventFileDownloaded, map[string]string{
		"id":   link.ID,
		"name": st.Name(),
	})

	return &Download{
		AbsPath:  abs,
		Name:     st.Name(),
		Size:     st.Size(),
		MimeType: MimeTypeFor(filepath.Ext(st.Name())),
	}, nil
}
