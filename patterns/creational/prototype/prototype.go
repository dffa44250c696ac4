// Package prototype produces new objects by copying an existing one.
package prototype

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// Copyable is implemented by anything that can hand out a copy of itself.
type Copyable interface {
	Copy() Copyable
}

// Project is the prototype type.
type Project struct {
	ID          int
	ProjectName string
	SourceCode  string
}

// Copy returns a new Project holding the same field values.
func (p *Project) Copy() Copyable { return p.clone() }

func (p *Project) clone() *Project {
	c := *p
	return &c
}

// String formats the project with all its fields.
func (p *Project) String() string {
	return fmt.Sprintf("Project(id=%d, projectName='%s', sourceCode='%s')", p.ID, p.ProjectName, p.SourceCode)
}

// ProjectFactory clones projects from a prototype.
type ProjectFactory struct {
	prototype *Project
}

// NewProjectFactory returns a factory cloning prototype.
func NewProjectFactory(prototype *Project) *ProjectFactory {
	return &ProjectFactory{prototype: prototype}
}

// CloneProject returns a fresh copy of the prototype as it is at call time.
func (f *ProjectFactory) CloneProject() *Project {
	return f.prototype.clone()
}

// Demo clones a project and shows the copy is independent.
var Demo = demo.Define("prototype", demo.Creational,
	"Create new objects by copying a prototype",
	func(w io.Writer) error {
		master := &Project{ID: 1, ProjectName: "testName", SourceCode: "testSource"}
		factory := NewProjectFactory(master)

		clone := factory.CloneProject()
		fmt.Fprintln(w, clone)
		fmt.Fprintf(w, "distinct instance: %t\n", clone != master)

		clone.ProjectName = "renamed"
		fmt.Fprintln(w, master)
		return nil
	})
