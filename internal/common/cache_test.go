package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	c.Set(CacheKeyBlog("66a1f0c2e4b0a1b2c3d4e5f6"), "value")

	v, ok := c.Get(CacheKeyBlog("66a1f0c2e4b0a1b2c3d4e5f6"))
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = c.Get(CacheKeyBlog("missing"))
	assert.False(t, ok)
}

func TestCacheExpiration(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	c.Set(CacheKeyRecentBlogs(6), "value", 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(CacheKeyRecentBlogs(6))
	assert.False(t, ok)
}

func TestCacheFlush(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	c.Set(CacheKeyFeaturedBlogs("title:asc"), "value")
	c.Flush()

	_, ok := c.Get(CacheKeyFeaturedBlogs("title:asc"))
	assert.False(t, ok)
}
