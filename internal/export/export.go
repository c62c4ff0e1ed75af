package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/step"
)

// RunData is the JSON export envelope for a recorded run.
type RunData struct {
	Algorithm algo.Metadata `json:"algorithm"`
	Input     []int         `json:"input"`
	Stats     step.Stats    `json:"stats"`
	Steps     []step.Step   `json:"steps"`
}

// WriteJSON writes a full run, metadata and all recorded steps, as
// indented JSON.
func WriteJSON(w io.Writer, meta algo.Metadata, l *step.Log) error {
	data := RunData{
		Algorithm: meta,
		Input:     l.Initial().Values,
		Stats:     step.Summarize(l),
		Steps:     make([]step.Step, l.Len()),
	}
	for i := 0; i < l.Len(); i++ {
		data.Steps[i] = l.At(i)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one row per step: sequence number, description,
// highlight summary, then the array values.
func WriteCSV(w io.Writer, l *step.Log) error {
	cw := csv.NewWriter(w)

	n := len(l.Initial().Values)
	header := []string{"seq", "description", "highlights"}
	for i := 0; i < n; i++ {
		header = append(header, "v"+strconv.Itoa(i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < l.Len(); i++ {
		s := l.At(i)
		row := []string{
			strconv.Itoa(s.Seq),
			s.Description,
			formatHighlights(s.Highlights),
		}
		for _, v := range s.Values {
			row = append(row, strconv.Itoa(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveJSON, SaveCSV, and SaveStepSVG are file-path conveniences for
// the CLI export command.

func SaveJSON(path string, meta algo.Metadata, l *step.Log) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, meta, l)
}

func SaveCSV(path string, l *step.Log) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, l)
}

func SaveStepSVG(path string, s step.Step, width, height int) error {
	return os.WriteFile(path, []byte(StepSVG(s, width, height)), 0644)
}

// formatHighlights renders highlights as "role:i,j;role:k" with roles
// in a stable order.
func formatHighlights(hl step.Highlights) string {
	roles := []step.Role{
		step.RoleComparing, step.RoleSwapping, step.RolePivot,
		step.RoleSorted, step.RoleRange, step.RoleBoundary,
	}
	var parts []string
	for _, role := range roles {
		idx, ok := hl[role]
		if !ok || len(idx) == 0 {
			continue
		}
		strs := make([]string, len(idx))
		for i, v := range idx {
			strs[i] = strconv.Itoa(v)
		}
		parts = append(parts, string(role)+":"+strings.Join(strs, ","))
	}
	return strings.Join(parts, ";")
}
