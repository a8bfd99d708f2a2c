// Package content holds the static configuration the app ships with:
// WHO-5 items, guided exercises, crisis helplines and the riddle pool.
// Each table can be overridden by a JSON file in the content directory;
// anything missing falls back to the built-in defaults.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Exercise struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	When   string   `json:"when"`
	What   string   `json:"what"`
	Steps  []string `json:"steps"`
	Cycles int      `json:"cycles"`
}

type Helpline struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Riddle struct {
	Question string   `json:"q"`
	Answers  []string `json:"a"`
	Hints    []string `json:"h"`
}

type Library struct {
	WHO5Items []string
	Exercises []Exercise
	Helplines []Helpline
	Riddles   []Riddle
}

// Load reads optional overrides from dir. A missing directory or file is
// not an error; a present but unparsable file is.
func Load(dir string) (*Library, error) {
	lib := &Library{
		WHO5Items: defaultWHO5Items,
		Exercises: defaultExercises,
		Helplines: defaultHelplines,
		Riddles:   defaultRiddles,
	}
	if dir == "" {
		return lib, nil
	}
	if err := loadJSON(filepath.Join(dir, "who5.json"), &lib.WHO5Items); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, "exercises.json"), &lib.Exercises); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, "helplines.json"), &lib.Helplines); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, "riddles.json"), &lib.Riddles); err != nil {
		return nil, err
	}
	return lib, nil
}

func loadJSON(path string, dst any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Exercise returns the exercise with the given id, or false.
func (l *Library) Exercise(id string) (Exercise, bool) {
	for _, ex := range l.Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

func (l *Library) Helpline(id string) (Helpline, bool) {
	for _, h := range l.Helplines {
		if h.ID == id {
			return h, true
		}
	}
	return Helpline{}, false
}
