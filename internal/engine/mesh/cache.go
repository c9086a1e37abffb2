package mesh

import "fmt"

// Primitive selects the draw primitive for a handle.
type Primitive int

const (
	// TriangleStrip is used by the sphere's boustrophedon index stream.
	TriangleStrip Primitive = iota
	// LineLoop is used by orbit rings; the closing edge is implicit.
	LineLoop
)

// Handle references uploaded vertex/index buffers plus the element
// count. Handles are write-once: created on first use, never mutated,
// deleted at shutdown.
type Handle struct {
	VAO, VBO, EBO uint32
	Count         int32
	Mode          Primitive
}

// Uploader turns generated geometry into a drawable Handle.
// The GL implementation lives in gl.go; tests substitute a fake.
type Uploader interface {
	Upload(g Geometry, mode Primitive) (*Handle, error)
	Delete(h *Handle)
}

// Cache owns the process-wide mesh handles. The sphere is a singleton
// shared by every body; rings are cached per radius because the radius
// is baked into the ring's vertex positions. Both are uploaded on
// first request and reused for every frame after.
type Cache struct {
	uploader     Uploader
	sphereSteps  int
	ringSegments int

	sphere *Handle
	rings  map[float32]*Handle
}

// NewCache creates an empty cache. Nothing is uploaded until the
// first Sphere or Ring call.
func NewCache(uploader Uploader, sphereSteps, ringSegments int) *Cache {
	return &Cache{
		uploader:     uploader,
		sphereSteps:  sphereSteps,
		ringSegments: ringSegments,
		rings:        make(map[float32]*Handle),
	}
}

// Sphere returns the shared unit-sphere handle, uploading it on first use.
func (c *Cache) Sphere() (*Handle, error) {
	if c.sphere != nil {
		return c.sphere, nil
	}

	h, err := c.uploader.Upload(Sphere(c.sphereSteps), TriangleStrip)
	if err != nil {
		return nil, fmt.Errorf("uploading sphere: %w", err)
	}
	c.sphere = h
	return h, nil
}

// Ring returns the orbit-ring handle for the given radius, uploading
// it on first use.
func (c *Cache) Ring(radius float32) (*Handle, error) {
	if h, ok := c.rings[radius]; ok {
		return h, nil
	}

	h, err := c.uploader.Upload(Ring(radius, c.ringSegments), LineLoop)
	if err != nil {
		return nil, fmt.Errorf("uploading ring radius %g: %w", radius, err)
	}
	c.rings[radius] = h
	return h, nil
}

// Close deletes every cached handle.
func (c *Cache) Close() {
	if c.sphere != nil {
		c.uploader.Delete(c.sphere)
		c.sphere = nil
	}
	for r, h := range c.rings {
		c.uploader.Delete(h)
		delete(c.rings, r)
	}
}
