package modules

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PiDelport/django-develop/internal/settings"
)

// Module is one entry found under a search root.
type Module struct {
	Name      string
	IsPackage bool
}

// Resolver lists and loads settings modules.
type Resolver interface {
	// Walk lists the modules under root, descending into packages. Entries
	// that cannot be read are passed to onError and skipped.
	Walk(root string, onError func(name string, err error)) []Module
	// Load finds name on the search path and decodes it.
	Load(name string) (settings.Map, error)
}

// FSResolver resolves modules from a list of search roots, each backed by an
// fs.FS.
type FSResolver struct {
	roots []string
	fsys  map[string]fs.FS
}

// NewFileResolver returns a Resolver over directories on disk.
func NewFileResolver(roots []string) *FSResolver {
	fsys := make(map[string]fs.FS, len(roots))
	for _, root := range roots {
		fsys[root] = os.DirFS(root)
	}
	return NewFSResolver(roots, fsys)
}

// NewFSResolver returns a Resolver over the given file systems, searched in
// the order of roots.
func NewFSResolver(roots []string, fsys map[string]fs.FS) *FSResolver {
	return &FSResolver{roots: roots, fsys: fsys}
}

// Roots returns the search roots in lookup order.
func (r *FSResolver) Roots() []string {
	return r.roots
}

func (r *FSResolver) rootFS(root string) fs.FS {
	if f, ok := r.fsys[root]; ok {
		return f
	}
	return os.DirFS(root)
}

// PackageMarker is the file that makes a directory a package.
const PackageMarker = "__init__"

// Walk implements Resolver. A root that doesn't exist yields nothing. Only
// package directories, those holding an __init__.py or an __init__ settings
// file, are descended into.
func (r *FSResolver) Walk(root string, onError func(name string, err error)) []Module {
	fsys := r.rootFS(root)
	var found []Module
	seen := make(map[string]bool)

	_ = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			if onError != nil {
				onError(moduleName(strings.TrimPrefix(p, ".")), err)
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if p == "." {
			return nil
		}
		base := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(base, ".") || base == "__pycache__" || strings.Contains(base, ".") {
				return fs.SkipDir
			}
			if !isPackage(fsys, p) {
				return fs.SkipDir
			}
			found = append(found, Module{Name: moduleName(p), IsPackage: true})
			return nil
		}
		ext := path.Ext(base)
		if _, ok := decoders[ext]; !ok {
			return nil
		}
		stem := strings.TrimSuffix(p, ext)
		if strings.HasPrefix(base, ".") || strings.Contains(path.Base(stem), ".") || path.Base(stem) == PackageMarker {
			return nil
		}
		name := moduleName(stem)
		if !seen[name] {
			seen[name] = true
			found = append(found, Module{Name: name})
		}
		return nil
	})
	return found
}

// Load implements Resolver. The first root holding a file for name wins; within
// a root, Extensions are tried in order.
func (r *FSResolver) Load(name string) (settings.Map, error) {
	rel := strings.ReplaceAll(name, ".", "/")
	if name == "" || !fs.ValidPath(rel) || strings.Contains(name, "/") {
		return nil, &LoadError{Name: name, Kind: KindNotFound, Err: ErrNotFound}
	}
	for _, root := range r.roots {
		fsys := r.rootFS(root)
		for _, ext := range Extensions {
			file := rel + ext
			data, err := fs.ReadFile(fsys, file)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			full := filepath.Join(root, filepath.FromSlash(file))
			if err != nil {
				return nil, &LoadError{Name: name, Path: full, Kind: KindRead, Err: err}
			}
			m, err := decoders[ext](data)
			if err != nil {
				return nil, &LoadError{Name: name, Path: full, Kind: KindDecode, Err: err}
			}
			return m, nil
		}
	}
	return nil, &LoadError{Name: name, Kind: KindNotFound, Err: ErrNotFound}
}

func isPackage(fsys fs.FS, dir string) bool {
	for _, ext := range append([]string{".py"}, Extensions...) {
		if info, err := fs.Stat(fsys, path.Join(dir, PackageMarker+ext)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

func moduleName(p string) string {
	return strings.ReplaceAll(p, "/", ".")
}
