// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

const (
	// SyntheticRootID identifies the invisible root above the containers.
	SyntheticRootID = "0"

	chromeTypeURL    = "url"
	chromeTypeFolder = "folder"

	rootBookmarkBar = "bookmark_bar"
	rootOther       = "other"
	rootSynced      = "synced"

	// syncIDKey keeps the identity of nodes added from the remote whose id is
	// not a GUID, so the next read reports the same id.
	syncIDKey = "bookmark_sync_id"

	// webkitEpochOffsetMillis is the distance between 1601-01-01 and the Unix epoch.
	webkitEpochOffsetMillis = 11644473600000
)

var rootOrder = []string{rootBookmarkBar, rootOther, rootSynced}

type chromeFile struct {
	Checksum     string                     `json:"checksum,omitempty"`
	Roots        map[string]json.RawMessage `json:"roots"`
	SyncMetadata string                     `json:"sync_metadata,omitempty"`
	Version      int                        `json:"version"`
}

type chromeNode struct {
	Children     []*chromeNode     `json:"children,omitzero"`
	DateAdded    string            `json:"date_added"`
	DateLastUsed string            `json:"date_last_used,omitempty"`
	DateModified string            `json:"date_modified,omitempty"`
	GUID         string            `json:"guid"`
	ID           string            `json:"id"`
	MetaInfo     map[string]string `json:"meta_info,omitempty"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	URL          string            `json:"url,omitempty"`
}

func (n *chromeNode) identity() string {
	if id := n.MetaInfo[syncIDKey]; id != "" {
		return id
	}
	if n.GUID != "" {
		return n.GUID
	}
	return n.ID
}

// ChromeStore reads and extends a Chromium "Bookmarks" profile file.
//
// The browser keeps the tree in memory and rewrites the file on its own
// changes, so nodes added while it runs may be overwritten by it.
type ChromeStore struct {
	path    string
	logger  *logger.Logger
	now     func() time.Time
	newGUID func() string

	mu        sync.Mutex
	lastWrite string
}

func NewChromeStore(path string, log *logger.Logger) (*ChromeStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyBookmarksPath
	}

	return &ChromeStore{
		path:    path,
		logger:  log,
		now:     time.Now,
		newGUID: uuid.NewString,
	}, nil
}

// Path returns the watched file.
func (s *ChromeStore) Path() string {
	return s.path
}

func (s *ChromeStore) ReadTree(ctx context.Context) ([]models.HostNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, roots, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	root := models.HostNode{ID: SyntheticRootID}
	for i, name := range rootOrder {
		container, ok := roots[name]
		if !ok {
			continue
		}
		node := toHostNode(container, SyntheticRootID, i)
		node.DefaultContainer = true
		root.Children = append(root.Children, node)
	}

	return []models.HostNode{root}, nil
}

func toHostNode(n *chromeNode, parentID string, index int) models.HostNode {
	idx := index
	node := models.HostNode{
		ID:           n.identity(),
		Title:        n.Name,
		URL:          n.URL,
		ParentID:     parentID,
		Index:        &idx,
		DateAdded:    webkitToUnixMillis(n.DateAdded),
		DateModified: webkitToUnixMillis(n.DateModified),
	}
	for i, child := range n.Children {
		node.Children = append(node.Children, toHostNode(child, node.ID, i))
	}
	return node
}

func (s *ChromeStore) AddNodes(ctx context.Context, nodes []models.BookmarkNode) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, roots, err := s.load()
	if err != nil {
		return 0, err
	}

	byID := make(map[string]*chromeNode)
	var maxID int64
	var index func(n *chromeNode)
	index = func(n *chromeNode) {
		byID[n.identity()] = n
		if id, convErr := strconv.ParseInt(n.ID, 10, 64); convErr == nil && id > maxID {
			maxID = id
		}
		for _, c := range n.Children {
			index(c)
		}
	}
	for _, r := range roots {
		index(r)
	}

	fallback := roots[rootOther]
	if fallback == nil {
		fallback = roots[rootBookmarkBar]
	}
	if fallback == nil {
		return 0, ErrMissingRoots
	}

	added := 0
	for _, n := range flatten(nodes) {
		if _, ok := byID[n.ID]; ok {
			continue
		}

		parent := byID[n.ParentID]
		if parent == nil || parent.Type != chromeTypeFolder {
			parent = fallback
		}

		maxID++
		created := s.newChromeNode(n, maxID)
		pos := min(max(n.Index, 0), len(parent.Children))
		parent.Children = slices.Insert(parent.Children, pos, created)
		byID[n.ID] = created
		added++
	}

	if added == 0 {
		return 0, nil
	}

	if err = s.save(file, roots); err != nil {
		return 0, err
	}

	s.logger.Info().Str("func", "*ChromeStore.AddNodes").Int("added", added).Str("path", s.path).Msg("remote nodes written to host")
	return added, nil
}

func (s *ChromeStore) newChromeNode(n models.BookmarkNode, id int64) *chromeNode {
	dateAdded := n.DateAdded
	if dateAdded <= 0 {
		dateAdded = s.now().UnixMilli()
	}

	created := &chromeNode{
		DateAdded: unixMillisToWebkit(dateAdded),
		ID:        strconv.FormatInt(id, 10),
		Name:      n.Title,
		Type:      chromeTypeURL,
		URL:       n.URL,
	}
	if n.IsFolder() {
		created.Type = chromeTypeFolder
		created.Children = []*chromeNode{}
		if n.DateModified > 0 {
			created.DateModified = unixMillisToWebkit(n.DateModified)
		}
	}

	if guid, err := uuid.Parse(n.ID); err == nil {
		created.GUID = guid.String()
	} else {
		created.GUID = s.newGUID()
		created.MetaInfo = map[string]string{syncIDKey: n.ID}
	}
	return created
}

// IsOwnWrite reports whether data is exactly what this store last wrote.
func (s *ChromeStore) IsOwnWrite(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWrite != "" && s.lastWrite == utils.Fingerprint(data)
}

func (s *ChromeStore) load() (chromeFile, map[string]*chromeNode, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return chromeFile{}, nil, fmt.Errorf("%w: %w", ErrReadBookmarks, err)
	}

	var file chromeFile
	if err = json.Unmarshal(raw, &file); err != nil {
		return chromeFile{}, nil, fmt.Errorf("%w: %w", ErrDecodeBookmarks, err)
	}

	roots := make(map[string]*chromeNode, len(rootOrder))
	for _, name := range rootOrder {
		rawRoot, ok := file.Roots[name]
		if !ok {
			continue
		}
		var node chromeNode
		if err = json.Unmarshal(rawRoot, &node); err != nil {
			return chromeFile{}, nil, fmt.Errorf("%w: root %s: %w", ErrDecodeBookmarks, name, err)
		}
		roots[name] = &node
	}
	if len(roots) == 0 {
		return chromeFile{}, nil, ErrMissingRoots
	}

	return file, roots, nil
}

// save replaces the file atomically. The checksum is dropped since the
// browser recomputes it when it is absent.
func (s *ChromeStore) save(file chromeFile, roots map[string]*chromeNode) error {
	for name, node := range roots {
		raw, err := json.Marshal(node)
		if err != nil {
			return fmt.Errorf("%w: encode root %s: %w", ErrWriteBookmarks, name, err)
		}
		file.Roots[name] = raw
	}
	file.Checksum = ""

	data, err := json.MarshalIndent(file, "", "   ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteBookmarks, err)
	}

	if err = writeFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteBookmarks, err)
	}

	s.lastWrite = utils.Fingerprint(data)
	return nil
}

func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Chmod(mode); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}

// flatten returns nodes in depth-first order with nested children lifted
// out and linked through ParentID.
func flatten(nodes []models.BookmarkNode) []models.BookmarkNode {
	var out []models.BookmarkNode
	var walk func(list []models.BookmarkNode, parentID string)
	walk = func(list []models.BookmarkNode, parentID string) {
		for _, n := range list {
			children := n.Children
			n.Children = nil
			if n.ParentID == "" {
				n.ParentID = parentID
			}
			out = append(out, n)
			walk(children, n.ID)
		}
	}
	walk(nodes, "")
	return out
}

// webkitToUnixMillis converts a WebKit timestamp (microseconds since
// 1601-01-01, as a decimal string) to Unix milliseconds. Missing or
// unparsable values yield 0.
func webkitToUnixMillis(v string) int64 {
	micros, err := strconv.ParseInt(v, 10, 64)
	if err != nil || micros <= 0 {
		return 0
	}
	ms := micros/1000 - webkitEpochOffsetMillis
	if ms < 0 {
		return 0
	}
	return ms
}

func unixMillisToWebkit(ms int64) string {
	return strconv.FormatInt((ms+webkitEpochOffsetMillis)*1000, 10)
}
