package services

import (
	"fmt"
	"io"
	"log"

	"tactify-cms/models"
	"tactify-cms/repositories"
	"tactify-cms/storage"
)

type PosterService interface {
	Create(req models.PosterCreateRequest, filename string, file io.Reader) (*models.Post, error)
	Update(id int, req models.PosterEditRequest, filename string, file io.Reader) (*models.Post, error)
	Delete(id int) error
	GetByID(id int) (*models.Post, error)
	List(page, pageSize int) ([]models.Post, int64, error)
	ListAll() ([]models.Post, error)
	RandomSample(n int) ([]models.Post, error)
}

type posterService struct {
	postRepo repositories.PostRepository
	store    *storage.FileStore
	prefix   string
}

func NewPosterService(postRepo repositories.PostRepository, store *storage.FileStore, prefix string) PosterService {
	return &posterService{postRepo: postRepo, store: store, prefix: prefix}
}

// artifactName derives the deterministic on-disk name for an upload:
// fixed prefix, the owning row id, then the sanitized original name.
func (s *posterService) artifactName(id uint, original string) string {
	return fmt.Sprintf("%s%d%s", s.prefix, id, original)
}

// Create persists the row first to obtain an id, then saves the file
// and persists doc/url. A file-save failure leaves the row allocated
// but file-less and reports models.ErrStorage; the caller decides how
// to recover.
func (s *posterService) Create(req models.PosterCreateRequest, filename string, file io.Reader) (*models.Post, error) {
	name := s.store.Sanitize(filename)
	if name == "" || !s.store.Allowed(name) {
		return nil, models.ErrFileType
	}

	post := &models.Post{
		Header:      req.Header,
		Body:        req.Body,
		Description: req.Description,
		Tags:        req.Tags,
		Kind:        models.KindPoster,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	artifact := s.artifactName(post.ID, name)
	path, err := s.store.Save(artifact, file)
	if err != nil {
		log.Printf("poster create id=%d: saving %s: %v", post.ID, artifact, err)
		return post, models.ErrStorage
	}

	post.Doc = path
	post.URL = fmt.Sprintf("/download_file/%d/%s", post.ID, artifact)
	if err := s.postRepo.Update(post); err != nil {
		return post, err
	}
	return post, nil
}

// Update applies field changes, replacing the artifact first when a new
// file is supplied. Persistence is batched after the file step, so a
// failed replacement leaves the row untouched. An empty filename means
// the current artifact stays.
func (s *posterService) Update(id int, req models.PosterEditRequest, filename string, file io.Reader) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if filename != "" {
		name := s.store.Sanitize(filename)
		if name == "" || !s.store.Allowed(name) {
			return nil, models.ErrFileType
		}

		// The recorded path must still be a regular file on disk;
		// anything else fails the whole update.
		if !s.store.Exists(post.Doc) || !s.store.IsRegularFile(post.Doc) {
			log.Printf("poster update id=%d: recorded file %q missing", post.ID, post.Doc)
			return nil, models.ErrStorage
		}
		if err := s.store.Remove(post.Doc); err != nil {
			log.Printf("poster update id=%d: removing %s: %v", post.ID, post.Doc, err)
			return nil, models.ErrStorage
		}

		artifact := s.artifactName(post.ID, name)
		path, err := s.store.Save(artifact, file)
		if err != nil {
			log.Printf("poster update id=%d: saving %s: %v", post.ID, artifact, err)
			return nil, models.ErrStorage
		}

		post.Doc = path
		post.URL = fmt.Sprintf("/download_file/%d/%s", post.ID, artifact)
	}

	post.Header = req.Header
	post.Body = req.Body
	post.Description = req.Description
	post.Tags = req.Tags
	post.Kind = models.KindPoster

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the artifact best-effort, then the row. A file that
// is already gone is logged and never blocks the row deletion.
func (s *posterService) Delete(id int) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if post.HasFile() {
		if err := s.store.Remove(post.Doc); err != nil {
			log.Printf("poster delete id=%d: removing %s: %v", post.ID, post.Doc, err)
		}
	}

	return s.postRepo.Delete(post.ID)
}

func (s *posterService) GetByID(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

func (s *posterService) List(page, pageSize int) ([]models.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.postRepo.List(models.KindPoster, page, pageSize)
}

func (s *posterService) ListAll() ([]models.Post, error) {
	return s.postRepo.ListAll(models.KindPoster)
}

func (s *posterService) RandomSample(n int) ([]models.Post, error) {
	return s.postRepo.Random(models.KindPoster, n)
}
