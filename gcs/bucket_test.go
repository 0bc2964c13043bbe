package gcs_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/gcs"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const testBucket = "jobready-data"

// fakeBucket serves the parts of the Cloud Storage JSON and XML APIs the
// store touches: object listing, media download and uploads. A non-zero
// status field makes the matching call fail with that status.
type fakeBucket struct {
	mu         sync.Mutex
	objects    map[string][]byte
	generation int64

	listStatus   int
	getStatus    int
	uploadStatus int

	uploads     []url.Values
	gets        int
	pendingName string
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{objects: make(map[string][]byte)}
}

// put stores content under name at the given generation.
func (f *fakeBucket) put(name string, content []byte, generation int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = content
	f.generation = generation
}

func (f *fakeBucket) object(name string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.objects[name]
}

func (f *fakeBucket) uploadParams() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.uploads...)
}

func (f *fakeBucket) downloads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodPost || r.Method == http.MethodPut:
		f.upload(w, r)
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/b/"+testBucket+"/o"):
		f.list(w)
	case r.Method == http.MethodGet:
		f.download(w, path.Base(r.URL.Path))
	default:
		apiError(w, http.StatusMethodNotAllowed)
	}
}

func (f *fakeBucket) list(w http.ResponseWriter) {
	if f.listStatus != 0 {
		apiError(w, f.listStatus)
		return
	}
	names := make([]string, 0, len(f.objects))
	for name := range f.objects {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]map[string]string, 0, len(names))
	for _, name := range names {
		items = append(items, objectResource(name, f.generation))
	}
	writeResource(w, map[string]any{"kind": "storage#objects", "items": items})
}

func (f *fakeBucket) download(w http.ResponseWriter, name string) {
	f.gets++
	if f.getStatus != 0 {
		apiError(w, f.getStatus)
		return
	}
	data, ok := f.objects[name]
	if !ok {
		apiError(w, http.StatusNotFound)
		return
	}
	gen := strconv.FormatInt(f.generation, 10)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.Header().Set("X-Goog-Generation", gen)
	w.Header().Set("X-Goog-Metageneration", "1")
	_, _ = w.Write(data)
}

// upload accepts multipart uploads and both legs of a resumable upload.
func (f *fakeBucket) upload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		apiError(w, http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	if r.Method == http.MethodPost {
		f.uploads = append(f.uploads, query)
		if f.uploadStatus != 0 {
			apiError(w, f.uploadStatus)
			return
		}
	}

	name, content := f.pendingName, body
	switch {
	case query.Get("uploadType") == "resumable":
		f.pendingName = metadataName(body)
		w.Header().Set("Location", "http://"+r.Host+"/upload/session")
		w.WriteHeader(http.StatusOK)
		return
	case r.Method == http.MethodPost:
		name, content, err = splitMultipart(r.Header.Get("Content-Type"), body)
		if err != nil {
			apiError(w, http.StatusBadRequest)
			return
		}
	}

	f.generation++
	f.objects[name] = content
	writeResource(w, objectResource(name, f.generation))
}

func splitMultipart(contentType string, body []byte) (string, []byte, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil, err
	}
	mr := multipart.NewReader(strings.NewReader(string(body)), params["boundary"])

	meta, err := mr.NextPart()
	if err != nil {
		return "", nil, err
	}
	metaBody, err := io.ReadAll(meta)
	if err != nil {
		return "", nil, err
	}

	media, err := mr.NextPart()
	if err != nil {
		return "", nil, err
	}
	content, err := io.ReadAll(media)
	if err != nil {
		return "", nil, err
	}
	return metadataName(metaBody), content, nil
}

func metadataName(body []byte) string {
	var meta struct {
		Name string `json:"name"`
	}
	_ = json.Unmarshal(body, &meta)
	return meta.Name
}

func objectResource(name string, generation int64) map[string]string {
	return map[string]string{
		"kind":           "storage#object",
		"bucket":         testBucket,
		"name":           name,
		"generation":     strconv.FormatInt(generation, 10),
		"metageneration": "1",
		"contentType":    "application/json",
	}
}

func writeResource(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func apiError(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"error":{"code":%d,"message":%q}}`, code, http.StatusText(code))
}

// newFakeStore returns a store whose client talks to f.
func newFakeStore(t *testing.T, f *fakeBucket, seed jobready.DatasetStore) *gcs.DatasetStore {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	client, err := storage.NewClient(context.Background(),
		option.WithEndpoint(srv.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	store, err := gcs.NewDatasetStore(client, gcs.Config{
		Bucket:  testBucket,
		Seed:    seed,
		Timeout: 10 * time.Second,
	})
	require.NoError(t, err)
	return store
}
