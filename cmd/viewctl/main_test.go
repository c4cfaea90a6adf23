package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderFacultyFromFile(t *testing.T) {
	out, err := run(t, "", "render", "faculty", "--file", "testdata/teacher.json")
	require.NoError(t, err)

	var page struct {
		Title   string `json:"title"`
		State   string `json:"state"`
		Profile struct {
			Kind         string `json:"kind"`
			RelatedTable struct {
				Rows []struct {
					Cells []struct {
						Text string `json:"text"`
					} `json:"cells"`
				} `json:"rows"`
			} `json:"relatedTable"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, "Grace Hopper", page.Title)
	assert.Equal(t, "ready", page.State)
	assert.Equal(t, "teacher", page.Profile.Kind)
	require.Len(t, page.Profile.RelatedTable.Rows, 1)
	assert.Equal(t, "No classes found.", page.Profile.RelatedTable.Rows[0].Cells[0].Text)
}

func TestRenderStateOverride(t *testing.T) {
	out, err := run(t, "", "render", "departments", "--state", "loading", "-o", "yaml")
	require.NoError(t, err)

	var page map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &page))
	assert.Equal(t, "loading", page["state"])
	assert.Equal(t, "Loading department details...", page["message"])
}

func TestRenderClassFromStdin(t *testing.T) {
	out, err := run(t, `{"id":"c1","name":"Algebra I","capacity":25}`, "render", "classes")
	require.NoError(t, err)
	assert.Contains(t, out, `"25 spots"`)
	assert.Contains(t, out, `"Class Details"`)
}

const cdnBannerClass = `{"id":"c1","name":"Algebra I","bannerUrl":"https://res.cloudinary.com/academy/image/upload/banners/algebra.jpg","bannerCldPubId":"banners/algebra"}`

func renderedBanner(t *testing.T, out string) map[string]string {
	t.Helper()
	var page struct {
		Banner map[string]string `json:"banner"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	return page.Banner
}

func TestRenderClassBannerWithoutCloudName(t *testing.T) {
	t.Setenv("CDN_CLOUD_NAME", "")

	out, err := run(t, cdnBannerClass, "render", "classes")
	require.NoError(t, err)

	banner := renderedBanner(t, out)
	assert.Equal(t, "image", banner["kind"])
	assert.Equal(t, "https://res.cloudinary.com/academy/image/upload/banners/algebra.jpg", banner["src"])
}

func TestRenderClassBannerWithCloudName(t *testing.T) {
	t.Setenv("CDN_CLOUD_NAME", "academy")

	out, err := run(t, cdnBannerClass, "render", "classes")
	require.NoError(t, err)

	banner := renderedBanner(t, out)
	assert.Equal(t, "cdn", banner["kind"])
	assert.True(t, strings.HasPrefix(banner["src"], "https://res.cloudinary.com/academy/image/upload/c_fill"), banner["src"])
	assert.True(t, strings.HasSuffix(banner["src"], "/banners/algebra"), banner["src"])
}

func TestRenderRejectsUnknownInput(t *testing.T) {
	_, err := run(t, "{}", "render", "courses")
	assert.Error(t, err)

	_, err = run(t, "{}", "render", "classes", "--state", "pending")
	assert.Error(t, err)

	_, err = run(t, "{}", "render", "classes", "-o", "xml")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	out, err := run(t, `{"user":{"id":"u1","name":"Root","role":"admin"}}`, "classify")
	require.NoError(t, err)
	assert.Contains(t, out, `"variant": "bare"`)
}

func TestTokenRequiresUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	_, err := run(t, "", "token")
	assert.Error(t, err)

	out, err := run(t, "", "token", "--user", "u1", "--role", "student")
	require.NoError(t, err)
	assert.Contains(t, out, `"token"`)
}

func TestCacheInvalidateRejectsUnknownResource(t *testing.T) {
	_, err := run(t, "", "cache", "invalidate", "courses")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown resource "courses"`)

	_, err = run(t, "", "cache", "invalidate")
	assert.Error(t, err)
}

func TestCacheInvalidateNeedsSharedCache(t *testing.T) {
	t.Setenv("ENABLE_VIEW_CACHE", "true")
	t.Setenv("CACHE_BACKEND", "memory")
	_, err := run(t, "", "cache", "invalidate", "classes", "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory cache lives inside the API process")

	t.Setenv("ENABLE_VIEW_CACHE", "false")
	t.Setenv("CACHE_BACKEND", "redis")
	_, err = run(t, "", "cache", "invalidate", "classes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view cache is disabled")
}
