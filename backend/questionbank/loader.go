package questionbank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

var ErrBankNotFound = errors.New("question bank file not found")

// Loader reads section question banks from CSV files and caches them for
// the lifetime of the process. Banks are static between deploys, so a
// cached section is never invalidated.
type Loader struct {
	dir string

	mu    sync.Mutex
	cache map[string][]Question
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, cache: make(map[string][]Question)}
}

// Section returns the ordered question records for one bank file. A
// missing file is reported as ErrBankNotFound so callers can skip the
// section instead of failing the whole test.
func (l *Loader) Section(csvName string) ([]Question, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if qs, ok := l.cache[csvName]; ok {
		return qs, nil
	}

	qs, err := readBankFile(filepath.Join(l.dir, csvName))
	if err != nil {
		return nil, err
	}

	l.cache[csvName] = qs
	return qs, nil
}

var optionLetters = []string{"A", "B", "C", "D", "E"}

func readBankFile(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBankNotFound, filepath.Base(path))
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read bank header %s: %w", filepath.Base(path), err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var questions []Question
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read bank row %s: %w", filepath.Base(path), err)
		}

		q := Question{
			Topic:         field(record, "Topic"),
			SubTopic:      field(record, "SubTopic"),
			Difficulty:    ClassifyDifficulty(field(record, "DifficultyLevelPredicted")),
			Type:          classifyType(field(record, "QuestionType")),
			CorrectAnswer: field(record, "CorrectAnswerValue"),
			Prompt:        field(record, "QuestionPrompt"),
			Passage:       field(record, "PassageOrSetContent"),
			Solution:      field(record, "SolutionExplanation"),
		}

		for _, letter := range optionLetters {
			text := field(record, "Option"+letter+"Text")
			if text == "" {
				continue
			}
			value := field(record, "Option"+letter+"Value")
			if value == "" {
				value = letter
			}
			q.Options = append(q.Options, Option{Text: text, Value: value})
		}

		questions = append(questions, q)
	}

	return questions, nil
}
