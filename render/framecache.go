package render

import (
	lru "github.com/hashicorp/golang-lru"
)

type frameKey struct {
	camera        Camera
	width, height int
}

// FrameCache keeps recently derived canvas frames so that renders of the
// same camera and size (tiles, repeated frames) skip the basis setup.
// It is safe for concurrent use.
type FrameCache struct {
	cache *lru.Cache // frameKey -> Frame
}

// NewFrameCache returns a cache holding at most size frames.
func NewFrameCache(size int) (*FrameCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &FrameCache{cache: cache}, nil
}

// Frame returns the cached frame for camera at width×height, deriving and
// storing it on a miss.
func (c *FrameCache) Frame(camera Camera, width, height int) Frame {
	key := frameKey{camera: camera, width: width, height: height}
	if val, ok := c.cache.Get(key); ok {
		return val.(Frame)
	}
	frame := NewFrame(camera, width, height)
	c.cache.Add(key, frame)
	return frame
}

// Len returns the number of cached frames.
func (c *FrameCache) Len() int {
	return c.cache.Len()
}
