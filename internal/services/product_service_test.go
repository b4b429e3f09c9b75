package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

func images(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "https://cdn.test/products/img" + string(rune('a'+i)) + ".jpg"
	}
	return out
}

func imageFiles(n int) []UploadFile {
	out := make([]UploadFile, n)
	for i := range out {
		out[i] = UploadFile{Filename: "shoe.jpg", ContentType: "image/jpeg", Size: 1024, Data: []byte("jpeg")}
	}
	return out
}

func createTestProduct(imageCounts ...int) *models.Product {
	p := &models.Product{
		ID:        uuid.New(),
		Brand:     models.ProductBrandEdos,
		Reference: "EDS-001",
		NameFr:    "Mocassin Cuir",
		Category:  "Mocassins",
		Status:    models.ProductStatusActive,
	}
	variants := make([]models.ColorVariant, 0, len(imageCounts))
	for i, n := range imageCounts {
		variants = append(variants, models.ColorVariant{
			Name:    []string{"Noir", "Marron", "Camel"}[i%3],
			NameAr:  "أسود",
			HexCode: "#000000",
			Images:  images(n),
		})
	}
	p.ColorVariants = variants
	return p
}

func newTestProductService() (*ProductService, *MockProductRepository, *fakeDocumentClient) {
	repo := new(MockProductRepository)
	docs := &fakeDocumentClient{}
	return NewProductService(repo, NewMediaService(docs)), repo, docs
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid product is stored with defaults", func(t *testing.T) {
		service, repo, _ := newTestProductService()
		repo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil)

		product, err := service.Create(ctx, &models.ProductRequest{
			Reference: " EDS-010 ",
			NameFr:    "Derby",
			ColorVariants: []models.ColorVariant{
				{Name: "Noir", Images: images(4), MainImageIndex: 9},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "EDS-010", product.Reference)
		assert.Equal(t, models.ProductBrandEdos, product.Brand)
		assert.Equal(t, models.ProductStatusActive, product.Status)
		assert.Equal(t, 3, product.ColorVariants[0].MainImageIndex)
		repo.AssertExpectations(t)
	})

	t.Run("too few images is rejected before saving", func(t *testing.T) {
		service, repo, _ := newTestProductService()

		_, err := service.Create(ctx, &models.ProductRequest{
			Reference:     "EDS-010",
			NameFr:        "Derby",
			ColorVariants: []models.ColorVariant{{Name: "Noir", Images: images(3)}},
		})

		require.Error(t, err)
		assert.Equal(t, `Color "Noir" needs at least 4 images (currently has 3)`, err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductService_GetActive(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestProductService()

	hidden := createTestProduct(4)
	hidden.Status = models.ProductStatusHidden
	repo.On("GetByID", ctx, hidden.ID).Return(hidden, nil)

	_, err := service.GetActive(ctx, hidden.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	product, err := service.Get(ctx, hidden.ID)
	require.NoError(t, err)
	assert.Equal(t, hidden.ID, product.ID)
}

func TestProductService_RemoveColorImage(t *testing.T) {
	ctx := context.Background()

	t.Run("removal keeping four images is saved", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(5)
		product.ColorVariants[0].MainImageIndex = 4
		repo.On("GetByID", ctx, product.ID).Return(product, nil)
		repo.On("Update", ctx, product).Return(nil)

		updated, err := service.RemoveColorImage(ctx, product.ID, 0, 1)

		require.NoError(t, err)
		assert.Len(t, updated.ColorVariants[0].Images, 4)
		assert.Equal(t, 3, updated.ColorVariants[0].MainImageIndex)
		assert.Equal(t, []string{"products/imgb.jpg"}, docs.deleted)
		repo.AssertExpectations(t)
	})

	t.Run("removal below four images is rejected", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		_, err := service.RemoveColorImage(ctx, product.ID, 0, 0)

		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Empty(t, docs.deleted)
	})

	t.Run("unknown color", func(t *testing.T) {
		service, repo, _ := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		_, err := service.RemoveColorImage(ctx, product.ID, 3, 0)
		assert.True(t, models.IsValidationError(err))
	})
}

func TestProductService_RemoveColor(t *testing.T) {
	ctx := context.Background()

	t.Run("last color cannot be removed", func(t *testing.T) {
		service, repo, _ := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		_, err := service.RemoveColor(ctx, product.ID, 0)

		require.Error(t, err)
		assert.Equal(t, "Please add at least one color variant", err.Error())
	})

	t.Run("second color is removed", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(4, 5)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)
		repo.On("Update", ctx, product).Return(nil)

		updated, err := service.RemoveColor(ctx, product.ID, 0)

		require.NoError(t, err)
		require.Len(t, updated.ColorVariants, 1)
		assert.Equal(t, "Marron", updated.ColorVariants[0].Name)
		assert.Len(t, docs.deleted, 4)
	})
}

func TestProductService_UpdateDiscardsReplacedImages(t *testing.T) {
	ctx := context.Background()
	service, repo, docs := newTestProductService()
	product := createTestProduct(4, 5)
	repo.On("GetByID", ctx, product.ID).Return(product, nil)
	repo.On("Update", ctx, product).Return(nil)

	kept := images(3)
	updated, err := service.Update(ctx, product.ID, &models.ProductRequest{
		Brand:     models.ProductBrandEdos,
		Reference: "EDS-001",
		NameFr:    "Mocassin Cuir",
		ColorVariants: []models.ColorVariant{
			{Name: "Noir", HexCode: "#000000", Images: append(kept, "https://cdn.test/products/new.jpg")},
		},
	})

	require.NoError(t, err)
	require.Len(t, updated.ColorVariants, 1)
	assert.Equal(t, []string{"products/imgd.jpg", "products/imge.jpg"}, docs.deleted)

	t.Run("failed save keeps every image", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		_, err := service.Update(ctx, product.ID, &models.ProductRequest{Reference: "EDS-001", NameFr: "Mocassin Cuir"})

		require.Error(t, err)
		assert.Empty(t, docs.deleted)
	})
}

func TestProductService_DeleteDiscardsImages(t *testing.T) {
	ctx := context.Background()
	service, repo, docs := newTestProductService()
	product := createTestProduct(4, 5)
	repo.On("GetByID", ctx, product.ID).Return(product, nil)
	repo.On("Delete", ctx, product.ID).Return(nil)

	require.NoError(t, service.Delete(ctx, product.ID))
	assert.Len(t, docs.deleted, 9)
	assert.Equal(t, "products/imga.jpg", docs.deleted[0])
}

func TestStoragePath(t *testing.T) {
	cases := []struct {
		url  string
		path string
		ok   bool
	}{
		{"https://cdn.test/products/1_abc_shoe.jpg", "products/1_abc_shoe.jpg", true},
		{"http://docs:8080/api/v1/documents/media/logos/edos_1_logo.png", "logos/edos_1_logo.png", true},
		{"https://example.com/elsewhere/shoe.jpg", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		p, ok := StoragePath(tc.url)
		assert.Equal(t, tc.ok, ok, tc.url)
		assert.Equal(t, tc.path, p, tc.url)
	}
}

func TestProductService_AddColor(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads images and appends the variant", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)
		repo.On("Update", ctx, product).Return(nil)

		updated, err := service.AddColor(ctx, product.ID, &models.ColorRequest{Name: "Bordeaux", HexCode: "#800020"}, imageFiles(6))

		require.NoError(t, err)
		require.Len(t, updated.ColorVariants, 2)
		color := updated.ColorVariants[1]
		assert.Equal(t, "Bordeaux", color.Name)
		assert.Equal(t, "", color.NameAr)
		assert.Len(t, color.Images, models.MaxImagesPerColor)
		assert.Len(t, docs.paths, models.MaxImagesPerColor)
	})

	t.Run("not enough valid images", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		files := imageFiles(3)
		files = append(files, UploadFile{Filename: "notes.txt", ContentType: "text/plain", Size: 10})
		_, err := service.AddColor(ctx, product.ID, &models.ColorRequest{Name: "Bordeaux"}, files)

		require.Error(t, err)
		assert.Equal(t, `Color "Bordeaux" needs at least 4 images (currently has 3)`, err.Error())
		assert.Empty(t, docs.paths)
	})

	t.Run("failed save removes the uploaded images", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)
		repo.On("Update", ctx, product).Return(errors.New("database is down"))

		_, err := service.AddColor(ctx, product.ID, &models.ColorRequest{Name: "Bordeaux"}, imageFiles(4))

		require.Error(t, err)
		require.Len(t, docs.paths, 4)
		assert.Equal(t, docs.paths, docs.deleted)
	})

	t.Run("failed upload removes the images stored before it", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		docs.failAfter = 3
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		_, err := service.AddColor(ctx, product.ID, &models.ColorRequest{Name: "Bordeaux"}, imageFiles(5))

		assert.ErrorIs(t, err, ErrUploadFailed)
		assert.Len(t, docs.deleted, 3)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("french name is required", func(t *testing.T) {
		service, repo, _ := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		_, err := service.AddColor(ctx, product.ID, &models.ColorRequest{NameAr: "أحمر"}, imageFiles(4))
		require.Error(t, err)
		assert.Equal(t, "Color name (French) is required", err.Error())
	})
}

func TestProductService_UploadColorImages(t *testing.T) {
	ctx := context.Background()

	t.Run("fills the remaining slot only", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)
		repo.On("Update", ctx, product).Return(nil)

		files := append(imageFiles(2), UploadFile{Filename: "huge.jpg", ContentType: "image/jpeg", Size: models.MaxImageSizeBytes + 1})
		updated, result, err := service.UploadColorImages(ctx, product.ID, 0, files)

		require.NoError(t, err)
		assert.Len(t, updated.ColorVariants[0].Images, 5)
		assert.Len(t, result.URLs, 1)
		require.Len(t, result.Rejected, 1)
		assert.Equal(t, `File "huge.jpg" is too large. Maximum size is 5MB`, result.Rejected[0].Reason)
		assert.Len(t, docs.paths, 1)
	})

	t.Run("full color", func(t *testing.T) {
		service, repo, _ := newTestProductService()
		product := createTestProduct(5)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		_, _, err := service.UploadColorImages(ctx, product.ID, 0, imageFiles(1))
		require.Error(t, err)
		assert.Equal(t, "Maximum 5 images per color", err.Error())
	})

	t.Run("failed save removes the uploaded images", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)
		repo.On("Update", ctx, product).Return(errors.New("database is down"))

		_, _, err := service.UploadColorImages(ctx, product.ID, 0, imageFiles(1))

		require.Error(t, err)
		require.Len(t, docs.paths, 1)
		assert.Equal(t, docs.paths, docs.deleted)
	})

	t.Run("storage failure", func(t *testing.T) {
		service, repo, docs := newTestProductService()
		docs.err = errors.New("connection refused")
		product := createTestProduct(4)
		repo.On("GetByID", ctx, product.ID).Return(product, nil)

		_, _, err := service.UploadColorImages(ctx, product.ID, 0, imageFiles(1))
		assert.ErrorIs(t, err, ErrUploadFailed)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProductService_SetMainImage(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestProductService()
	product := createTestProduct(5)
	repo.On("GetByID", ctx, product.ID).Return(product, nil)
	repo.On("Update", ctx, product).Return(nil)

	updated, err := service.SetMainImage(ctx, product.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ColorVariants[0].MainImageIndex)
	assert.Equal(t, updated.ColorVariants[0].Images[2], updated.MainImage())

	_, err = service.SetMainImage(ctx, product.ID, 0, 7)
	assert.True(t, models.IsValidationError(err))
}

func TestProductService_StorefrontList(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestProductService()
	repo.On("ListActive", ctx).Return([]models.Product{*createTestProduct(4, 4)}, nil)

	catalog, err := service.StorefrontList(ctx, StorefrontFilter{Color: "marron"})
	require.NoError(t, err)
	assert.Len(t, catalog.Products, 1)
	assert.Equal(t, []string{"Noir", "Marron"}, catalog.Colors)
}
