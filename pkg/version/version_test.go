package version

import (
	"runtime"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	defer func(tag, branch string) { GitTag, GitBranch = tag, branch }(GitTag, GitBranch)

	// The tag wins over the branch
	GitTag, GitBranch = "v1.2.3", "main"
	assert.Equal("v1.2.3", Version())

	// The branch is used when there is no tag
	GitTag = ""
	assert.Equal("main", Version())

	// Without ldflags there is still a version
	GitBranch = ""
	assert.NotEmpty(Version())
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	defer func(tag, branch string) { GitTag, GitBranch = tag, branch }(GitTag, GitBranch)
	GitTag, GitBranch = "v1.2.3", "main"

	metadata := Map("weather")
	assert.Equal("weather", metadata["name"])
	assert.Equal("v1.2.3", metadata["version"])
	assert.Equal("v1.2.3", metadata["tag"])
	assert.Equal("main", metadata["branch"])
	assert.Equal(runtime.Version(), metadata["compiler"])
}

func Test_version_003(t *testing.T) {
	assert := assert.New(t)

	// The name is omitted when empty
	metadata := Map("")
	_, exists := metadata["name"]
	assert.False(exists)
	assert.NotEmpty(metadata["version"])
}
