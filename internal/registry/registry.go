// Package registry provides a global registry of turtle programs.
// Programs register themselves in init() functions, allowing the platform
// to list and run them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-turtle/internal/script"
)

// Program is a named turtle script.
type Program struct {
	// ID is a unique identifier used on the command line (e.g., "square").
	ID string

	// Title is a human-readable name for display (e.g., "Square").
	Title string

	// Description is a one-line summary shown in menus.
	Description string

	// Source is the script text run on a fresh turtle.
	Source string

	stmts []script.Stmt
}

// Statements returns the parsed program.
func (p Program) Statements() []script.Stmt {
	return p.stmts
}

// ProgramInfo contains metadata about a registered program.
type ProgramInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	programs = make(map[string]Program)
	mu       sync.RWMutex
)

// Register adds a program to the registry.
// Typically called from an init() function.
// Panics if the ID is taken or the source does not parse.
func Register(id string, p Program) {
	stmts, err := script.Parse(p.Source)
	if err != nil {
		panic(fmt.Sprintf("registry: program %q: %v", id, err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := programs[id]; exists {
		panic(fmt.Sprintf("registry: program %q already registered", id))
	}

	p.ID = id
	if p.Title == "" {
		p.Title = id
	}
	p.stmts = stmts
	programs[id] = p
}

// List returns information about all registered programs, sorted by ID.
func List() []ProgramInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ProgramInfo, 0, len(programs))
	for id, p := range programs {
		result = append(result, ProgramInfo{
			ID:          id,
			Title:       p.Title,
			Description: p.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a program by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (Program, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := programs[id]
	if !ok {
		return Program{}, fmt.Errorf("registry: unknown program %q", id)
	}

	return p, nil
}

// Exists checks if a program with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := programs[id]
	return ok
}

// Run executes the program with the given ID against t.
func Run(t script.Target, id string) error {
	p, err := Get(id)
	if err != nil {
		return err
	}
	return script.Run(t, p.stmts)
}
