package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// VoteRow is a multiple-choice row: the "response" cell holds a vote
// count rather than free text.
type VoteRow struct {
	Question string `json:"question"`
	Votes    int    `json:"votes"`
}

// Dataset is the partitioned survey export: free-text rows ready for
// classification, and numeric vote rows split out for the
// multiple-choice charts.
type Dataset struct {
	OpenEnded      []SurveyResponse
	MultipleChoice []VoteRow
}

// Questions returns the distinct open-ended questions in first-seen order.
func (d Dataset) Questions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.OpenEnded {
		if _, ok := seen[r.Question]; !ok {
			seen[r.Question] = struct{}{}
			out = append(out, r.Question)
		}
	}
	return out
}

// ResponsesFor returns all open-ended response texts for one question,
// in source order.
func (d Dataset) ResponsesFor(question string) []string {
	var out []string
	for _, r := range d.OpenEnded {
		if r.Question == question {
			out = append(out, r.Text)
		}
	}
	return out
}

var numericResponse = regexp.MustCompile(`^\d+$`)

// LoadSurvey reads a survey CSV export and partitions it into open-ended
// and multiple-choice rows. The file must have a "Question" column and a
// "Response" (or "Responses") column; a UTF-8 BOM and surrounding
// whitespace in headers are tolerated. Blank and "nan" placeholder cells
// are dropped. Open-ended questions with fewer than minResponses rows
// are dropped entirely (minResponses <= 0 disables the filter).
func LoadSurvey(path string, minResponses int) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("LoadSurvey: %w", err)
	}
	defer f.Close()
	ds, err := ReadSurvey(f, minResponses)
	if err != nil {
		return Dataset{}, fmt.Errorf("LoadSurvey: %s: %w", path, err)
	}
	return ds, nil
}

// ReadSurvey parses survey CSV data from r. See LoadSurvey.
func ReadSurvey(r io.Reader, minResponses int) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, errors.New("empty csv")
		}
		return Dataset{}, fmt.Errorf("read header: %w", err)
	}

	questionCol, responseCol := -1, -1
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		switch strings.ToLower(name) {
		case "question":
			questionCol = i
		case "response", "responses":
			responseCol = i
		}
	}
	if questionCol < 0 || responseCol < 0 {
		return Dataset{}, fmt.Errorf("missing Question/Response columns in header %v", header)
	}

	var ds Dataset
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("read row: %w", err)
		}
		if questionCol >= len(rec) || responseCol >= len(rec) {
			continue
		}
		question := strings.TrimSpace(rec[questionCol])
		response := strings.TrimSpace(rec[responseCol])
		if !validCell(question) || !validCell(response) {
			continue
		}
		if numericResponse.MatchString(response) {
			votes, err := strconv.Atoi(response)
			if err != nil {
				continue
			}
			ds.MultipleChoice = append(ds.MultipleChoice, VoteRow{Question: question, Votes: votes})
			continue
		}
		ds.OpenEnded = append(ds.OpenEnded, SurveyResponse{Question: question, Text: response})
	}

	if minResponses > 0 {
		counts := make(map[string]int)
		for _, row := range ds.OpenEnded {
			counts[row.Question]++
		}
		kept := ds.OpenEnded[:0]
		for _, row := range ds.OpenEnded {
			if counts[row.Question] >= minResponses {
				kept = append(kept, row)
			}
		}
		ds.OpenEnded = kept
	}
	return ds, nil
}

// validCell rejects blank cells and the "nan" placeholder the export
// writes for missing values.
func validCell(s string) bool {
	return s != "" && !strings.EqualFold(s, "nan")
}

// readCSVWithHeader slurps a CSV, returning the data records and the
// header row separately.
func readCSVWithHeader(r io.Reader) (records [][]string, header []string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err = cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("empty csv")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	records, err = cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	return records, header, nil
}
