// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// fakeGitHub is an in-memory subset of the GitHub REST API: users, gists,
// repositories, refs and the contents API.
type fakeGitHub struct {
	t       *testing.T
	login   string
	baseURL string

	mu        sync.Mutex
	seq       int
	gists     map[string]*fakeGist
	repos     map[string]*fakeRepo
	calls     map[string]int
	forceCode map[string]int
}

type fakeGist struct {
	files     map[string]string
	versions  []string
	snapshots map[string]map[string]string
	truncated bool
}

// commit records the current files as a new version.
func (f *fakeGitHub) commit(g *fakeGist) string {
	v := f.nextID("v")
	if g.snapshots == nil {
		g.snapshots = make(map[string]map[string]string)
	}
	files := make(map[string]string, len(g.files))
	for name, content := range g.files {
		files[name] = content
	}
	g.snapshots[v] = files
	g.versions = append(g.versions, v)
	return v
}

type fakeRepo struct {
	defaultBranch string
	branches      map[string]map[string]fakeFile
}

type fakeFile struct {
	sha     string
	content []byte
}

func newFakeGitHub(t *testing.T) (*fakeGitHub, *httptest.Server) {
	t.Helper()
	f := &fakeGitHub{
		t:         t,
		login:     "octo",
		gists:     make(map[string]*fakeGist),
		repos:     make(map[string]*fakeRepo),
		calls:     make(map[string]int),
		forceCode: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", f.handleUser)
	mux.HandleFunc("POST /gists", f.handleCreateGist)
	mux.HandleFunc("GET /gists/{id}", f.handleGetGist)
	mux.HandleFunc("PATCH /gists/{id}", f.handlePatchGist)
	mux.HandleFunc("GET /gists/{id}/{sha}", f.handleGetGistRevision)
	mux.HandleFunc("GET /raw/{id}/{file}", f.handleRawGist)
	mux.HandleFunc("GET /repos/{owner}/{repo}", f.handleGetRepo)
	mux.HandleFunc("POST /user/repos", f.handleCreateRepo)
	mux.HandleFunc("POST /orgs/{org}/repos", f.handleCreateRepo)
	mux.HandleFunc("GET /repos/{owner}/{repo}/git/ref/heads/{branch}", f.handleGetRef)
	mux.HandleFunc("POST /repos/{owner}/{repo}/git/refs", f.handleCreateRef)
	mux.HandleFunc("GET /repos/{owner}/{repo}/contents/{path...}", f.handleGetContent)
	mux.HandleFunc("PUT /repos/{owner}/{repo}/contents/{path...}", f.handlePutContent)
	mux.HandleFunc("DELETE /repos/{owner}/{repo}/contents/{path...}", f.handleDeleteContent)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		f.mu.Lock()
		f.calls[key]++
		code, forced := f.forceCode[key]
		f.mu.Unlock()
		if forced {
			w.WriteHeader(code)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	f.baseURL = srv.URL

	return f, srv
}

func (f *fakeGitHub) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeGitHub) force(key string, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forceCode[key] = code
}

func (f *fakeGitHub) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeGitHub) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeGitHub) handleUser(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer test-token" {
		f.writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		return
	}
	f.writeJSON(w, http.StatusOK, map[string]string{"login": f.login})
}

// ── Gists ────────────────────────────────────────────────────────────────────

func (f *fakeGitHub) gistJSON(id string, g *fakeGist) map[string]any {
	files := make(map[string]any, len(g.files))
	for name, content := range g.files {
		if g.truncated {
			files[name] = map[string]any{
				"filename": name, "content": content[:len(content)/2], "truncated": true,
				"raw_url": f.baseURL + "/raw/" + id + "/" + name,
			}
			continue
		}
		files[name] = map[string]any{"filename": name, "content": content}
	}
	history := make([]map[string]any, 0, len(g.versions))
	for i := len(g.versions) - 1; i >= 0; i-- {
		history = append(history, map[string]any{
			"version":      g.versions[i],
			"committed_at": fakeCommitTime(i).Format(time.RFC3339),
		})
	}
	return map[string]any{"id": id, "files": files, "history": history}
}

func (f *fakeGitHub) handleCreateGist(w http.ResponseWriter, r *http.Request) {
	var req gistWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID("gist")
	g := &fakeGist{files: make(map[string]string)}
	for name, file := range req.Files {
		g.files[name] = file.Content
	}
	f.commit(g)
	f.gists[id] = g

	f.writeJSON(w, http.StatusCreated, f.gistJSON(id, g))
}

func (f *fakeGitHub) handleGetGist(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	g, ok := f.gists[id]
	if !ok {
		f.writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	f.writeJSON(w, http.StatusOK, f.gistJSON(id, g))
}

func (f *fakeGitHub) handlePatchGist(w http.ResponseWriter, r *http.Request) {
	var req gistWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	g, ok := f.gists[id]
	if !ok {
		f.writeJSON(w, http.StatusNotFound, nil)
		return
	}
	for name, file := range req.Files {
		g.files[name] = file.Content
	}
	f.commit(g)
	f.writeJSON(w, http.StatusOK, f.gistJSON(id, g))
}

func (f *fakeGitHub) handleGetGistRevision(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	g, ok := f.gists[id]
	if !ok {
		f.writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	files, ok := g.snapshots[r.PathValue("sha")]
	if !ok {
		f.writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	f.writeJSON(w, http.StatusOK, f.gistJSON(id, &fakeGist{files: files, versions: g.versions}))
}

// fakeCommitTime is the commit instant of the i-th gist version.
func fakeCommitTime(i int) time.Time {
	return time.Date(2026, 3, 1, 12, i, 0, 0, time.UTC)
}

func (f *fakeGitHub) handleRawGist(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	g, ok := f.gists[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	content, ok := g.files[r.PathValue("file")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = w.Write([]byte(content))
}

func (f *fakeGitHub) gistContent(id, file string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.gists[id]; ok {
		return g.files[file]
	}
	return ""
}

func (f *fakeGitHub) truncateGist(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gists[id].truncated = true
}

// putGist seeds a gist directly, bypassing the API.
func (f *fakeGitHub) putGist(id, file, content string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gists[id]
	if !ok {
		g = &fakeGist{files: make(map[string]string)}
		f.gists[id] = g
	}
	g.files[file] = content
	return f.commit(g)
}

// ── Repositories ─────────────────────────────────────────────────────────────

func repoKey(owner, repo string) string { return owner + "/" + repo }

func (f *fakeGitHub) addRepo(owner, repo, defaultBranch string) *fakeRepo {
	f.mu.Lock()
	defer f.mu.Unlock()
	fr := &fakeRepo{
		defaultBranch: defaultBranch,
		branches:      map[string]map[string]fakeFile{defaultBranch: {}},
	}
	f.repos[repoKey(owner, repo)] = fr
	return fr
}

// putFile seeds a file directly and returns its sha.
func (f *fakeGitHub) putFile(owner, repo, branch, p string, content []byte) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	sha := f.nextID("sha")
	f.repos[repoKey(owner, repo)].branches[branch][p] = fakeFile{sha: sha, content: content}
	return sha
}

func (f *fakeGitHub) files(owner, repo, branch string) map[string]fakeFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]fakeFile)
	if fr, ok := f.repos[repoKey(owner, repo)]; ok {
		for p, file := range fr.branches[branch] {
			out[p] = file
		}
	}
	return out
}

func (f *fakeGitHub) handleGetRepo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fr, ok := f.repos[repoKey(r.PathValue("owner"), r.PathValue("repo"))]
	if !ok {
		f.writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	f.writeJSON(w, http.StatusOK, map[string]string{"default_branch": fr.defaultBranch})
}

func (f *fakeGitHub) handleCreateRepo(w http.ResponseWriter, r *http.Request) {
	var req repoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.writeJSON(w, http.StatusBadRequest, nil)
		return
	}
	owner := f.login
	if org := r.PathValue("org"); org != "" {
		owner = org
	}
	f.addRepo(owner, req.Name, "main")
	f.writeJSON(w, http.StatusCreated, map[string]string{"default_branch": "main"})
}

func (f *fakeGitHub) handleGetRef(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fr, ok := f.repos[repoKey(r.PathValue("owner"), r.PathValue("repo"))]
	branch := r.PathValue("branch")
	if !ok || fr.branches[branch] == nil {
		f.writeJSON(w, http.StatusNotFound, nil)
		return
	}
	f.writeJSON(w, http.StatusOK, map[string]any{
		"ref":    "refs/heads/" + branch,
		"object": map[string]string{"sha": "head-" + branch},
	})
}

func (f *fakeGitHub) handleCreateRef(w http.ResponseWriter, r *http.Request) {
	var req gitRefCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	fr, ok := f.repos[repoKey(r.PathValue("owner"), r.PathValue("repo"))]
	if !ok {
		f.writeJSON(w, http.StatusNotFound, nil)
		return
	}
	branch := strings.TrimPrefix(req.Ref, "refs/heads/")
	files := make(map[string]fakeFile)
	for p, file := range fr.branches[fr.defaultBranch] {
		files[p] = file
	}
	fr.branches[branch] = files
	f.writeJSON(w, http.StatusCreated, map[string]any{"ref": req.Ref})
}

func (f *fakeGitHub) branchFiles(r *http.Request, branch string) (map[string]fakeFile, bool) {
	fr, ok := f.repos[repoKey(r.PathValue("owner"), r.PathValue("repo"))]
	if !ok {
		return nil, false
	}
	if branch == "" {
		branch = fr.defaultBranch
	}
	files, ok := fr.branches[branch]
	return files, ok
}

func (f *fakeGitHub) handleGetContent(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	files, ok := f.branchFiles(r, r.URL.Query().Get("ref"))
	if !ok {
		f.writeJSON(w, http.StatusNotFound, nil)
		return
	}

	p := r.PathValue("path")
	if file, ok := files[p]; ok {
		encoded := base64.StdEncoding.EncodeToString(file.content)
		// the real API wraps base64 at 60 columns
		var wrapped strings.Builder
		for i := 0; i < len(encoded); i += 60 {
			end := min(i+60, len(encoded))
			wrapped.WriteString(encoded[i:end])
			wrapped.WriteString("\n")
		}
		f.writeJSON(w, http.StatusOK, map[string]any{
			"type": "file", "name": path.Base(p), "path": p, "sha": file.sha,
			"content": wrapped.String(), "encoding": "base64",
		})
		return
	}

	var listing []map[string]any
	for fp, file := range files {
		if path.Dir(fp) == p {
			listing = append(listing, map[string]any{"type": "file", "name": path.Base(fp), "path": fp, "sha": file.sha})
		}
	}
	if len(listing) == 0 {
		f.writeJSON(w, http.StatusNotFound, nil)
		return
	}
	sort.Slice(listing, func(i, j int) bool { return listing[i]["name"].(string) < listing[j]["name"].(string) })
	f.writeJSON(w, http.StatusOK, listing)
}

func (f *fakeGitHub) handlePutContent(w http.ResponseWriter, r *http.Request) {
	var req repoPutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	files, ok := f.branchFiles(r, req.Branch)
	if !ok {
		f.writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}

	p := r.PathValue("path")
	current, exists := files[p]
	switch {
	case exists && req.SHA == "":
		f.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": `"sha" wasn't supplied.`})
		return
	case exists && req.SHA != current.sha, !exists && req.SHA != "":
		f.writeJSON(w, http.StatusConflict, map[string]string{"message": "does not match"})
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		f.writeJSON(w, http.StatusBadRequest, nil)
		return
	}
	sha := f.nextID("sha")
	files[p] = fakeFile{sha: sha, content: raw}
	f.writeJSON(w, http.StatusOK, map[string]any{"content": map[string]string{"sha": sha, "path": p}})
}

func (f *fakeGitHub) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	var req repoDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	files, ok := f.branchFiles(r, req.Branch)
	p := r.PathValue("path")
	current, exists := files[p]
	if !ok || !exists {
		f.writeJSON(w, http.StatusNotFound, nil)
		return
	}
	if current.sha != req.SHA {
		f.writeJSON(w, http.StatusConflict, nil)
		return
	}
	delete(files, p)
	f.writeJSON(w, http.StatusOK, map[string]any{})
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func testRemoteConfig(baseURL string) config.ClientRemote {
	return config.ClientRemote{
		Token:          "test-token",
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		FileName:       "bookmarks.json",
	}
}

func newTestClient(t *testing.T, baseURL string) *githubClient {
	t.Helper()
	c, err := newGitHubClient(testRemoteConfig(baseURL), logger.Nop())
	if err != nil {
		t.Fatalf("newGitHubClient: %v", err)
	}
	return c
}

func testEnvelope(device string, ids ...string) models.SyncEnvelope {
	nodes := make([]models.BookmarkNode, 0, len(ids))
	for i, id := range ids {
		nodes = append(nodes, models.BookmarkNode{ID: id, Title: id, URL: "https://" + id + ".test", Index: i, DateAdded: 100})
	}
	return models.SyncEnvelope{
		SchemaVersion: models.SchemaVersion,
		LastModified:  time.UnixMilli(1_700_000_000_000).UTC(),
		DeviceID:      device,
		Nodes:         nodes,
		Metadata:      models.EnvelopeMetadata{TotalCount: len(ids), SchemaVersion: models.SchemaVersion},
	}
}

func mustEncode(t *testing.T, env models.SyncEnvelope) string {
	t.Helper()
	s, err := encodeEnvelope(env)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return s
}
