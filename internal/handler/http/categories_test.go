package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetCategories(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(7)
	env.diary.EXPECT().GetCategories(gomock.Any(), int64(7)).Return(models.NewDiary().Categories, nil)

	rec := env.do(t, http.MethodGet, "/api/categories", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]models.Category](t, rec)
	require.Len(t, got, 6)
	assert.Equal(t, "Education", got[0].Name)
}

func TestGetCategories_StorageError(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(7)
	env.diary.EXPECT().GetCategories(gomock.Any(), int64(7)).Return(nil, store.ErrPersistence)

	rec := env.do(t, http.MethodGet, "/api/categories", "", true)

	assertError(t, rec, http.StatusInternalServerError, app.MsgFailedToGetCategories)
}

func TestAddCategory(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(7)

	request := models.CategoryRequest{Name: "Travel", Emoji: "✈️"}
	created := models.Category{ID: 7, Name: "Travel", Color: models.DefaultCategoryColor, Emoji: "✈️"}
	env.diary.EXPECT().AddCategory(gomock.Any(), int64(7), request).Return(created, nil)

	rec := env.do(t, http.MethodPost, "/api/categories", `{"name":"Travel","emoji":"✈️"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, created, decodeBody[models.Category](t, rec))
}

func TestAddCategory_Failures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"no name", validators.ErrCategoryNameRequired, http.StatusBadRequest, app.MsgCategoryNameRequired},
		{"duplicate", service.ErrCategoryAlreadyExists, http.StatusBadRequest, app.MsgCategoryExists},
		{"storage", store.ErrPersistence, http.StatusInternalServerError, app.MsgFailedToCreateCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.authorize(7)
			env.diary.EXPECT().AddCategory(gomock.Any(), int64(7), gomock.Any()).Return(models.Category{}, tt.err)

			rec := env.do(t, http.MethodPost, "/api/categories", `{"name":"Love"}`, true)

			assertError(t, rec, tt.wantStatus, tt.wantMessage)
		})
	}
}

func TestAddCategory_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(7)

	rec := env.do(t, http.MethodPost, "/api/categories", `not json`, true)

	assertError(t, rec, http.StatusBadRequest, app.MsgInvalidJSON)
}

func TestDeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(7)
	env.diary.EXPECT().DeleteCategory(gomock.Any(), int64(7), int64(3)).Return(nil)

	rec := env.do(t, http.MethodDelete, "/api/categories/3", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgCategoryDeleted, decodeBody[models.MessageResponse](t, rec).Message)
}

func TestDeleteCategory_InUse(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(7)
	env.diary.EXPECT().DeleteCategory(gomock.Any(), int64(7), int64(3)).Return(&service.CategoryInUseError{Count: 2})

	rec := env.do(t, http.MethodDelete, "/api/categories/3", "", true)

	assertError(t, rec, http.StatusBadRequest, "Cannot delete category with 2 entries. Please delete the entries first.")
}

func TestDeleteCategory_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(7)
	env.diary.EXPECT().DeleteCategory(gomock.Any(), int64(7), int64(99)).Return(service.ErrCategoryNotFound)

	rec := env.do(t, http.MethodDelete, "/api/categories/99", "", true)
	assertError(t, rec, http.StatusNotFound, app.MsgCategoryNotFound)

	// a non-numeric id never reaches the service
	rec = env.do(t, http.MethodDelete, "/api/categories/abc", "", true)
	assertError(t, rec, http.StatusNotFound, app.MsgCategoryNotFound)
}
