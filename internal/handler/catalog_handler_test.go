package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetCatalog(t *testing.T) {
	handler := NewCatalogHandler()

	router := gin.New()
	router.GET("/api/v1/catalog", handler.GetCatalog)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CommonFields []struct {
			Name     string   `json:"name"`
			Kind     string   `json:"kind"`
			Required bool     `json:"required"`
			Options  []string `json:"options"`
		} `json:"commonFields"`
		Sections []struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Fields []struct {
				Name        string `json:"name"`
				ValidateURL bool   `json:"validateUrl"`
			} `json:"fields"`
		} `json:"sections"`
		MandatoryFields []string `json:"mandatoryFields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.CommonFields, 7)
	require.Equal(t, "channel", resp.CommonFields[0].Name)
	require.True(t, resp.CommonFields[0].Required)
	require.NotEmpty(t, resp.CommonFields[0].Options)

	require.Len(t, resp.Sections, 4)
	require.Equal(t, "news", resp.Sections[0].ID)
	require.Equal(t, "chat", resp.Sections[3].ID)

	require.Equal(t, []string{"channel", "description", "tags", "language", "status", "publishDate"},
		resp.MandatoryFields)
}
