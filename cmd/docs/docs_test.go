package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routerAnnotation = regexp.MustCompile(`(?m)^// @Router\s+(\S+)\s+\[(\w+)\]`)

type swaggerDoc struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestDocumentCoversEveryHandlerRoute(t *testing.T) {
	doc := readDoc(t)

	files, err := filepath.Glob(filepath.Join("..", "..", "internal", "handlers", "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	routes := 0
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		src, err := os.ReadFile(f)
		require.NoError(t, err)

		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			routes++
			path, method := m[1], m[2]
			ops, ok := doc.Paths[path]
			if assert.True(t, ok, "%s missing from the document (%s)", path, filepath.Base(f)) {
				assert.Contains(t, ops, method, "%s %s missing from the document", strings.ToUpper(method), path)
			}
		}
	}

	documented := 0
	for _, ops := range doc.Paths {
		documented += len(ops)
	}
	assert.Equal(t, routes, documented, "document lists operations no handler declares")
}

func TestDocumentReferencesResolve(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	doc := readDoc(t)

	refs := regexp.MustCompile(`"#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, r := range refs {
		assert.Contains(t, doc.Definitions, r[1])
	}
	assert.Equal(t, "/api/v1", doc.BasePath)
}
