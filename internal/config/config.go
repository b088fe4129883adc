package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/multierr"

	"github.com/katalvlaran/riskpath/dijkstra"
)

var (
	// ErrNoJobs indicates a job file without any job block.
	ErrNoJobs = errors.New("config: no jobs defined")
	// ErrBadTiles indicates a tile specification that is not "RxC" with R, C ≥ 1.
	ErrBadTiles = errors.New("config: tiles must look like RxC with R, C >= 1")
)

// Job is one solve request.
type Job struct {
	Name     string
	Input    string
	TileRows int
	TileCols int
	Memory   dijkstra.MemoryMode
}

// Expanded reports whether the job asks for more than one tile.
func (j Job) Expanded() bool { return j.TileRows > 1 || j.TileCols > 1 }

// hclFile represents the top-level structure of a job file for decoding.
type hclFile struct {
	Jobs []*hclJob `hcl:"job,block"`
}

type hclJob struct {
	Name     string `hcl:"name,label"`
	Input    string `hcl:"input"`
	TileRows *int   `hcl:"tile_rows,optional"`
	TileCols *int   `hcl:"tile_cols,optional"`
	Memory   string `hcl:"memory,optional"`
}

// Defaults returns the two standard jobs for input: "part1" on the map as
// read and "part2" on the map expanded tileRows×tileCols.
func Defaults(input string, tileRows, tileCols int, mode dijkstra.MemoryMode) []Job {
	return []Job{
		{Name: "part1", Input: input, TileRows: 1, TileCols: 1, Memory: mode},
		{Name: "part2", Input: input, TileRows: tileRows, TileCols: tileCols, Memory: mode},
	}
}

// LoadFile parses an HCL job file. Every invalid job is reported; the
// individual errors are combined with multierr.
func LoadFile(path string) ([]Job, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, diags)
	}
	if len(parsed.Jobs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoJobs, path)
	}

	dir := filepath.Dir(path)
	jobs := make([]Job, 0, len(parsed.Jobs))
	seen := make(map[string]struct{}, len(parsed.Jobs))
	var errs error
	for _, hj := range parsed.Jobs {
		job, err := hj.toJob(dir)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, dup := seen[job.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("config: job %q defined more than once", job.Name))
			continue
		}
		seen[job.Name] = struct{}{}
		jobs = append(jobs, job)
	}
	if errs != nil {
		return nil, errs
	}

	return jobs, nil
}

func (hj *hclJob) toJob(dir string) (Job, error) {
	// Absent tile attributes mean a single tile; an explicit value must be ≥ 1.
	job := Job{Name: hj.Name, Input: hj.Input, TileRows: 1, TileCols: 1}
	if hj.TileRows != nil {
		job.TileRows = *hj.TileRows
	}
	if hj.TileCols != nil {
		job.TileCols = *hj.TileCols
	}
	if job.TileRows < 1 || job.TileCols < 1 {
		return Job{}, fmt.Errorf("config: job %q: %w", hj.Name, ErrBadTiles)
	}
	if job.Input == "" {
		return Job{}, fmt.Errorf("config: job %q: input must not be empty", hj.Name)
	}
	if !filepath.IsAbs(job.Input) {
		job.Input = filepath.Join(dir, job.Input)
	}

	mode, err := dijkstra.ParseMemoryMode(hj.Memory)
	if err != nil {
		return Job{}, fmt.Errorf("config: job %q: %w", hj.Name, err)
	}
	job.Memory = mode

	return job, nil
}

// ParseTiles parses "RxC" (or a single "N" meaning NxN) into a tile factor.
func ParseTiles(s string) (rows, cols int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTiles, s)
	}
	rows, err1 := strconv.Atoi(parts[0])
	cols, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTiles, s)
	}

	return rows, cols, nil
}
