package deps

import (
	"testing"

	"github.com/joefazee/wagerlog/internal/cache"
	"github.com/joefazee/wagerlog/internal/logger"
	"github.com/joefazee/wagerlog/internal/sanitizer"
	"github.com/stretchr/testify/assert"
)

func TestContainer_Registry(t *testing.T) {
	mem := cache.NewMemoryCache[string]()
	defer mem.Stop()

	c := NewContainer(nil, nil, sanitizer.NewHTMLStripper(), logger.NewNullLogger(), mem)

	assert.Nil(t, c.GetRepository("bets"))
	c.RegisterRepository("bets", "repo")
	assert.Equal(t, "repo", c.GetRepository("bets"))

	assert.Nil(t, c.GetService("bets"))
	c.RegisterService("bets", 42)
	assert.Equal(t, 42, c.GetService("bets"))
}
