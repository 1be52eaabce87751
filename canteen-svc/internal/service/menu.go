package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AllowedImageTypes maps accepted image content types to file extensions.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, c *domain.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if err := validateInput(c); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return repoErr(s.repo.CreateCategory(ctx, c), "Category")
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, repoErr(err, "Category")
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, c *domain.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if err := validateInput(c); err != nil {
		return err
	}
	return repoErr(s.repo.UpdateCategory(ctx, c), "Category")
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return repoErr(s.repo.DeleteCategory(ctx, id), "Category")
}

var _ CategoryServiceInterface = (*CategoryService)(nil)

type MenuService struct {
	repo   MenuRepository
	images ImageStore
	log    *logrus.Entry
}

func NewMenuService(repo MenuRepository, images ImageStore, log *logrus.Entry) *MenuService {
	return &MenuService{repo: repo, images: images, log: log}
}

func (s *MenuService) Create(ctx context.Context, m *domain.MenuItem) error {
	m.Name = strings.TrimSpace(m.Name)
	if err := validateInput(m); err != nil {
		return err
	}
	if err := s.resolveImage(ctx, m); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return repoErr(s.repo.CreateMenuItem(ctx, m), "Menu item")
}

func (s *MenuService) List(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	m, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, repoErr(err, "Menu item")
	}
	return m, nil
}

func (s *MenuService) Update(ctx context.Context, m *domain.MenuItem) error {
	m.Name = strings.TrimSpace(m.Name)
	if err := validateInput(m); err != nil {
		return err
	}
	current, err := s.repo.GetMenuItem(ctx, m.ID)
	if err != nil {
		return repoErr(err, "Menu item")
	}
	if err := s.resolveImage(ctx, m); err != nil {
		return err
	}
	if err := s.repo.UpdateMenuItem(ctx, m); err != nil {
		return repoErr(err, "Menu item")
	}
	if current.ImageURL != m.ImageURL {
		s.removeImage(ctx, current.ImageURL)
	}
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return repoErr(err, "Menu item")
	}
	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		return repoErr(err, "Menu item")
	}
	s.removeImage(ctx, current.ImageURL)
	return nil
}

func (s *MenuService) SetRemainQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 0 {
		return apperr.InvalidErr("Quantity cannot be negative.", map[string]string{"remainQuantity": "Must be 0 or more."})
	}
	return repoErr(s.repo.SetRemainQuantity(ctx, id, quantity), "Menu item")
}

// UploadImage stores r as the item's image. The type is taken from the
// leading bytes, not from what the client declared.
func (s *MenuService) UploadImage(ctx context.Context, id string, r io.Reader, filename string) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", apperr.InvalidErr("Error reading the file", nil).With(err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := AllowedImageTypes[contentType]
	if !ok {
		return "", apperr.InvalidErr("Invalid file type. Only JPEG, PNG, GIF, WebP allowed", nil).With(ErrUnsupportedImage)
	}

	current, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return "", repoErr(err, "Menu item")
	}

	obj, err := s.images.Put(ctx, io.MultiReader(bytes.NewReader(head), r), domain.Upload{
		Filename:    strings.TrimSuffix(filename, filepath.Ext(filename)) + ext,
		ContentType: contentType,
	})
	if err != nil {
		return "", apperr.Wrap(err)
	}
	if err := s.repo.UpdateMenuItemImage(ctx, id, obj.URL); err != nil {
		s.removeImage(ctx, obj.URL)
		return "", repoErr(err, "Menu item")
	}
	if current.ImageURL != obj.URL {
		s.removeImage(ctx, current.ImageURL)
	}

	s.log.WithFields(logrus.Fields{"menu_item_id": id, "key": obj.Key}).Info("menu image uploaded")
	return obj.URL, nil
}

// removeImage deletes a stored image that is no longer referenced. URLs that
// point outside the image store are left alone.
func (s *MenuService) removeImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	key, ok := s.images.KeyOf(url)
	if !ok {
		return
	}
	if err := s.images.Delete(ctx, key); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to delete menu image")
	}
}

// resolveImage uploads an inline Base64 image and replaces it with the stored URL.
// Plain URLs and paths are kept as they are.
func (s *MenuService) resolveImage(ctx context.Context, m *domain.MenuItem) error {
	if m.ImageURL == "" || isImageLink(m.ImageURL) {
		return nil
	}

	data, contentType, err := DecodeImagePayload(m.ImageURL)
	if err != nil {
		return apperr.InvalidErr("Image must be a URL or a Base64 encoded JPEG, PNG, GIF or WebP.",
			map[string]string{"imageUrl": "Unsupported image."}).With(err)
	}

	obj, err := s.images.Put(ctx, bytes.NewReader(data), domain.Upload{
		Filename:    "menu" + AllowedImageTypes[contentType],
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return apperr.Wrap(err)
	}
	m.ImageURL = obj.URL
	return nil
}

func isImageLink(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "/")
}

// DecodeImagePayload accepts a data: URI or bare Base64 and returns the bytes
// with their sniffed content type.
func DecodeImagePayload(payload string) ([]byte, string, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 || !strings.HasSuffix(payload[:comma], ";base64") {
			return nil, "", ErrUnsupportedImage
		}
		payload = payload[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, "", errors.Join(ErrUnsupportedImage, err)
	}

	contentType := http.DetectContentType(data)
	if _, ok := AllowedImageTypes[contentType]; !ok {
		return nil, "", ErrUnsupportedImage
	}
	return data, contentType, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
