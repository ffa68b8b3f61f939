// SPDX-License-Identifier: MIT

package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/internal/atomicio"
	"github.com/katalvlaran/q4/matrix"
	"github.com/katalvlaran/q4/pipeline"
	"github.com/katalvlaran/q4/qstudy"
	"github.com/katalvlaran/q4/quadrant"
)

// File names inside a run directory.
const (
	KeepFile     = "Q_keep.csv"
	DiscardFile  = "Q_discard.csv"
	StudyFile    = "Q_study.json"
	EnergyFile   = "er.json"
	QStudyFile   = "qstudy.json"
	ModelDir     = "svd_model"
	ManifestFile = "MANIFEST.json"
	ErrorFile    = "ERROR.json"
)

// Keys of Manifest.Files.
const (
	KeyKeepFile     = "keep_file"
	KeyDiscardFile  = "discard_file"
	KeyStudyFile    = "study_file"
	KeyEnergyReport = "energy_report"
	KeyQStudyFile   = "qstudy_file"
	KeyModelDir     = "svd_model"
)

// Status values.
const (
	StatusCompleted = "completed"
	StatusError     = "error"
)

// MaxVarianceRatios bounds svd_analysis.explained_variance_ratio.
const MaxVarianceRatios = 10

const (
	opWriteRun   = "WriteRun"
	opWriteError = "WriteError"
	filePerm     = 0o644
	dirPerm      = 0o755
)

// Run names the source of a pipeline result.
type Run struct {
	Input  string   // input path, recorded verbatim
	Header []string // input column names; nil selects DefaultHeader
	Result *pipeline.Result
}

// Study is the Q_study.json document.
type Study struct {
	Timestamp      time.Time       `json:"timestamp"`
	InputFile      string          `json:"input_file"`
	RunID          string          `json:"run_id"`
	ProcessingMode string          `json:"processing_mode"`
	DataShape      [2]int          `json:"data_shape"`
	Q4Analysis     Q4Analysis      `json:"q4_analysis"`
	SVDAnalysis    *SVDAnalysis    `json:"svd_analysis,omitempty"`
	QStudyAnalysis *QStudyAnalysis `json:"qstudy_analysis,omitempty"`
}

// Q4Analysis summarises the projector branch.
type Q4Analysis struct {
	ProjectorShapes map[string][2]int `json:"projector_shapes"`
	QStudy          quadrant.Study    `json:"q_study"`
	EnergySplit     float64           `json:"energy_split"`
}

// SVDAnalysis summarises the fitted model and the scores.
type SVDAnalysis struct {
	ModelDir               string    `json:"model_dir"`
	Method                 string    `json:"method"`
	Centering              string    `json:"centering"`
	ProjectionShape        [2]int    `json:"projection_shape"`
	ExplainedVarianceRatio []float64 `json:"explained_variance_ratio"`
	TotalExplainedVariance float64   `json:"total_explained_variance"`
}

// QStudyAnalysis carries the flat feature record.
type QStudyAnalysis struct {
	Features *qstudy.Features `json:"features"`
}

// EnergyMetrics is the er.json document.
type EnergyMetrics struct {
	EnergySplit    float64 `json:"energy_split"`
	TotalRows      int     `json:"total_rows"`
	Dimensions     int     `json:"dimensions"`
	KeepRatio      float64 `json:"keep_ratio"`
	DiscardRatio   float64 `json:"discard_ratio"`
	ProcessingMode string  `json:"processing_mode"`
}

// Manifest is the MANIFEST.json document.
type Manifest struct {
	Input          string            `json:"input"`
	OutputPrefix   string            `json:"output_prefix"`
	Files          map[string]string `json:"files"`
	Timestamp      time.Time         `json:"timestamp"`
	Status         string            `json:"status"`
	RunID          string            `json:"run_id"`
	ProcessingMode string            `json:"processing_mode"`
	Enhancements   Enhancements      `json:"enhancements"`
}

// Enhancements records which optional sections a run produced.
type Enhancements struct {
	SVDAnalysis    bool `json:"svd_analysis"`
	QStudyAnalysis bool `json:"qstudy_analysis"`
}

// ErrorReport is the ERROR.json document.
type ErrorReport struct {
	Input          string    `json:"input"`
	OutputPrefix   string    `json:"output_prefix"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
	Error          string    `json:"error"`
	ProcessingMode string    `json:"processing_mode"`
}

// WriteRun writes the run directory dir for run and returns its manifest.
// Files are relative to dir in the manifest. MANIFEST.json is written last,
// so its presence marks a complete directory.
//
// Errors: ErrInvalidInput for a nil or incomplete result, ErrDimensionMismatch
// for a header of the wrong width, ErrSerialization for any write failure.
func WriteRun(dir string, run Run) (*Manifest, error) {
	res := run.Result
	if res == nil || res.Quadrants == nil || res.Pair == nil {
		return nil, artifactErrorf(opWriteRun, fmt.Errorf("%w: incomplete result", matrix.ErrInvalidInput))
	}
	header := run.Header
	if header == nil {
		header = DefaultHeader(res.Cols)
	}
	if len(header) != res.Cols {
		return nil, artifactErrorf(opWriteRun,
			fmt.Errorf("%w: header has %d names for %d columns", matrix.ErrDimensionMismatch, len(header), res.Cols))
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, artifactErrorf(opWriteRun, fmt.Errorf("%w: %w", matrix.ErrSerialization, err))
	}

	mode := res.Mode.String()
	man := &Manifest{
		Input:          run.Input,
		OutputPrefix:   dir,
		Files:          map[string]string{},
		Timestamp:      res.Finished,
		Status:         StatusCompleted,
		RunID:          res.RunID,
		ProcessingMode: mode,
	}

	// Quadrant tables.
	keep, discard := res.Quadrants.Keep(), res.Quadrants.Discard()
	if err := writeTable(filepath.Join(dir, KeepFile), header, keep); err != nil {
		return nil, err
	}
	man.Files[KeyKeepFile] = KeepFile
	if err := writeTable(filepath.Join(dir, DiscardFile), header, discard); err != nil {
		return nil, err
	}
	man.Files[KeyDiscardFile] = DiscardFile

	// Q_study.json.
	d := res.Pair.Dim()
	study := Study{
		Timestamp:      res.Finished,
		InputFile:      run.Input,
		RunID:          res.RunID,
		ProcessingMode: mode,
		DataShape:      [2]int{res.Rows, res.Cols},
		Q4Analysis: Q4Analysis{
			ProjectorShapes: map[string][2]int{"Ps": {d, d}, "Pv": {d, d}},
			QStudy:          res.Quadrants.Study(),
			EnergySplit:     res.Energy.EnergySplit,
		},
	}

	if res.Model != nil {
		if err := res.Model.Save(filepath.Join(dir, ModelDir)); err != nil {
			return nil, artifactErrorf(opWriteRun, err)
		}
		man.Files[KeyModelDir] = ModelDir
		man.Enhancements.SVDAnalysis = true

		ev := res.Model.ExplainedVar()
		total := floats.Sum(ev)
		ratios := make([]float64, min(len(ev), MaxVarianceRatios))
		for i := range ratios {
			if total > 0 {
				ratios[i] = ev[i] / total
			}
		}
		n, k := res.Scores.Dims()
		study.SVDAnalysis = &SVDAnalysis{
			ModelDir:               ModelDir,
			Method:                 res.Model.Method().String(),
			Centering:              res.Model.Centering().String(),
			ProjectionShape:        [2]int{n, k},
			ExplainedVarianceRatio: ratios,
			TotalExplainedVariance: total,
		}
	}

	if res.QStudy != nil {
		if err := writeJSON(filepath.Join(dir, QStudyFile), res.QStudy); err != nil {
			return nil, err
		}
		man.Files[KeyQStudyFile] = QStudyFile
		man.Enhancements.QStudyAnalysis = true
		study.QStudyAnalysis = &QStudyAnalysis{Features: res.QStudy}
	}

	if err := writeJSON(filepath.Join(dir, StudyFile), study); err != nil {
		return nil, err
	}
	man.Files[KeyStudyFile] = StudyFile

	// er.json: both quadrant tables carry every input row.
	keepRows, _ := keep.Dims()
	discardRows, _ := discard.Dims()
	er := EnergyMetrics{
		EnergySplit:    res.Energy.EnergySplit,
		TotalRows:      res.Rows,
		Dimensions:     res.Cols,
		KeepRatio:      float64(keepRows) / float64(res.Rows),
		DiscardRatio:   float64(discardRows) / float64(res.Rows),
		ProcessingMode: mode,
	}
	if err := writeJSON(filepath.Join(dir, EnergyFile), er); err != nil {
		return nil, err
	}
	man.Files[KeyEnergyReport] = EnergyFile

	if err := writeJSON(filepath.Join(dir, ManifestFile), man); err != nil {
		return nil, err
	}

	return man, nil
}

// WriteError records a failed run as dir/ERROR.json.
func WriteError(dir, input string, mode pipeline.Mode, cause error) error {
	if cause == nil {
		return artifactErrorf(opWriteError, fmt.Errorf("%w: nil cause", matrix.ErrInvalidInput))
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return artifactErrorf(opWriteError, fmt.Errorf("%w: %w", matrix.ErrSerialization, err))
	}

	return writeJSON(filepath.Join(dir, ErrorFile), ErrorReport{
		Input:          input,
		OutputPrefix:   dir,
		Timestamp:      time.Now().UTC(),
		Status:         StatusError,
		Error:          cause.Error(),
		ProcessingMode: mode.String(),
	})
}

func writeTable(path string, header []string, M *mat.Dense) error {
	err := atomicio.Write(path, filePerm, func(w io.Writer) error {
		return WriteCSV(w, header, M)
	})
	if err != nil && !errors.Is(err, matrix.ErrSerialization) {
		err = artifactErrorf(opWriteRun, fmt.Errorf("%w: %w", matrix.ErrSerialization, err))
	}

	return err
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return artifactErrorf(opWriteRun, fmt.Errorf("%w: %w", matrix.ErrSerialization, err))
	}
	if err = atomicio.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return artifactErrorf(opWriteRun, fmt.Errorf("%w: %w", matrix.ErrSerialization, err))
	}

	return nil
}
