package prototype_test

import (
	"testing"

	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/patterns/creational/prototype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// ProjectFactory
// -----------------------------------------------------------------------------

// TestCloneProject_EqualButDistinct verifies a clone has equal fields but is a separate instance.
func TestCloneProject_EqualButDistinct(t *testing.T) {
	t.Parallel()

	master := &prototype.Project{ID: 7, ProjectName: "n", SourceCode: "s"}
	clone := prototype.NewProjectFactory(master).CloneProject()

	assert.Equal(t, *master, *clone)
	assert.NotSame(t, master, clone)

	clone.SourceCode = "changed"
	assert.Equal(t, "s", master.SourceCode)
}

// TestCloneProject_EachCallFresh verifies every call copies the prototype's current state
// into a new Project.
func TestCloneProject_EachCallFresh(t *testing.T) {
	t.Parallel()

	master := &prototype.Project{ID: 1, ProjectName: "a", SourceCode: "s"}
	factory := prototype.NewProjectFactory(master)

	first := factory.CloneProject()
	master.ProjectName = "b"
	second := factory.CloneProject()

	assert.NotSame(t, first, second)
	assert.Equal(t, "a", first.ProjectName)
	assert.Equal(t, "b", second.ProjectName)
}

//
// -----------------------------------------------------------------------------
// Copyable
// -----------------------------------------------------------------------------

// TestProject_Copy verifies Copy hands back a distinct *Project behind the interface.
func TestProject_Copy(t *testing.T) {
	t.Parallel()

	master := &prototype.Project{ID: 2, ProjectName: "n", SourceCode: "s"}
	var c prototype.Copyable = master

	got := c.Copy()
	require.IsType(t, &prototype.Project{}, got)
	assert.NotSame(t, master, got)
	assert.Equal(t, *master, *got.(*prototype.Project))
}

//
// -----------------------------------------------------------------------------
// Demo
// -----------------------------------------------------------------------------

// TestDemo verifies the scripted clone and that the prototype is unchanged.
func TestDemo(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", prototype.Demo.Name())
	require.NoError(t, prototype.Demo.Run(tr))
	assert.Equal(t, []string{
		"Project(id=1, projectName='testName', sourceCode='testSource')",
		"distinct instance: true",
		"Project(id=1, projectName='testName', sourceCode='testSource')",
	}, tr.Lines())
}
