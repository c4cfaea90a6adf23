package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sma-adp-views/pkg/errors"
)

type viewBody struct {
	Title string `json:"title"`
}

func serve(t *testing.T, handler gin.HandlerFunc, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestViewSetsETagAndMeta(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		View(c, viewBody{Title: "Algebra"}, map[string]interface{}{"cache_hit": true})
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	assert.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))

	var env struct {
		Data viewBody               `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Algebra", env.Data.Title)
	assert.Equal(t, true, env.Meta["cache_hit"])
}

func TestViewNotModified(t *testing.T) {
	body, err := json.Marshal(viewBody{Title: "Algebra"})
	require.NoError(t, err)

	rec := serve(t, func(c *gin.Context) {
		View(c, viewBody{Title: "Algebra"})
	}, map[string]string{"If-None-Match": ETag(body)})

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestETagStable(t *testing.T) {
	a := ETag([]byte(`{"a":1}`))
	assert.Equal(t, a, ETag([]byte(`{"a":1}`)))
	assert.NotEqual(t, a, ETag([]byte(`{"a":2}`)))
}

func TestErrorWithData(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		ErrorWithData(c, appErrors.Clone(appErrors.ErrNotFound, "Class details not found."), viewBody{Title: "Class Details"})
	}, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var env struct {
		Data  viewBody         `json:"data"`
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Class Details", env.Data.Title)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Class details not found.", env.Error.Message)
}

func TestErrorNormalisesPlainErrors(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		Error(c, errors.New("boom"))
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
