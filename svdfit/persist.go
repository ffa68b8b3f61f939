// SPDX-License-Identifier: MIT

package svdfit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/internal/atomicio"
	"github.com/katalvlaran/q4/matrix"
)

// Artifact file names inside a model directory.
const (
	MuFile           = "mu.npy"
	ComponentsFile   = "components.npy"
	ExplainedVarFile = "explained_var.npy"
	MetaFile         = "meta.json"
)

const (
	opSave = "Save"
	opLoad = "Load"

	filePerm = 0o644
	dirPerm  = 0o755
)

// Meta is the metadata record stored in meta.json.
type Meta struct {
	Dims      int    `json:"dims"`
	K         int    `json:"k"`
	Centering string `json:"centering,omitempty"`
	Method    string `json:"method,omitempty"`
}

// Meta describes the model as persisted.
func (m *Model) Meta() Meta {
	meta := Meta{Dims: m.Dims(), K: m.K(), Centering: m.centering.String()}
	if m.method != Auto {
		meta.Method = m.method.String()
	}

	return meta
}

// Save writes the model into dir (created if missing). Every artifact is
// written to a temp file and renamed into place; a crash between artifacts
// can leave a mixed directory, which Load reports as ErrSerialization when
// shapes disagree.
func (m *Model) Save(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return saveErr(err)
	}

	writes := []struct {
		name string
		val  any
	}{
		{MuFile, m.mu},
		{ComponentsFile, m.components},
		{ExplainedVarFile, m.explainedVar},
	}
	for _, w := range writes {
		val := w.val
		err := atomicio.Write(filepath.Join(dir, w.name), filePerm, func(out io.Writer) error {
			return npyio.Write(out, val)
		})
		if err != nil {
			return saveErr(err)
		}
	}

	meta, err := json.MarshalIndent(m.Meta(), "", "  ")
	if err != nil {
		return saveErr(err)
	}
	if err = atomicio.WriteFile(filepath.Join(dir, MetaFile), meta, filePerm); err != nil {
		return saveErr(err)
	}

	return nil
}

// Load reads a model directory written by Save (or any producer of the same
// layout). Numeric arrays round-trip exactly.
//
// Errors: ErrSerialization for missing files, undecodable content, shapes
// that disagree with meta.json, or non-finite values.
func Load(dir string) (*Model, error) {
	raw, err := os.ReadFile(filepath.Join(dir, MetaFile))
	if err != nil {
		return nil, loadErr(err)
	}
	var meta Meta
	if err = json.Unmarshal(raw, &meta); err != nil {
		return nil, loadErr(err)
	}
	centering, err := ParseCentering(meta.Centering)
	if err != nil {
		return nil, loadErr(err)
	}

	var mu, ev []float64
	var comps mat.Dense
	if err = readNpy(filepath.Join(dir, MuFile), &mu); err != nil {
		return nil, loadErr(err)
	}
	if err = readNpy(filepath.Join(dir, ComponentsFile), &comps); err != nil {
		return nil, loadErr(err)
	}
	if err = readNpy(filepath.Join(dir, ExplainedVarFile), &ev); err != nil {
		return nil, loadErr(err)
	}

	if r, c := comps.Dims(); len(mu) != meta.Dims || c != meta.Dims || r != meta.K || len(ev) != meta.K {
		return nil, loadErr(fmt.Errorf("meta {dims:%d k:%d} vs mu %d, components %dx%d, explained_var %d",
			meta.Dims, meta.K, len(mu), r, c, len(ev)))
	}
	model, err := NewModel(mu, &comps, ev, centering)
	if err != nil {
		return nil, loadErr(err)
	}
	if meta.Method != "" {
		if model.method, err = ParseMethod(meta.Method); err != nil {
			return nil, loadErr(err)
		}
	}

	return model, nil
}

func readNpy(path string, ptr any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return npyio.Read(f, ptr)
}

// saveErr and loadErr classify every persistence failure as ErrSerialization
// while keeping the cause (e.g. fs.ErrNotExist) reachable through errors.Is.
func saveErr(err error) error {
	return fmt.Errorf("%s: %w: %w", opSave, ErrSerialization, err)
}

func loadErr(err error) error {
	if errors.Is(err, matrix.ErrInvalidInput) || errors.Is(err, matrix.ErrDimensionMismatch) {
		return fmt.Errorf("%s: %w: %v", opLoad, ErrSerialization, err)
	}

	return fmt.Errorf("%s: %w: %w", opLoad, ErrSerialization, err)
}
