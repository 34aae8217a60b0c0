package model

// Collection accumulates records in arrival order. A record whose id was
// already seen replaces the earlier one in place; records without an id are
// always appended.
type Collection struct {
	records []Record
	index   map[string]int
	dupes   int
}

// NewCollection creates an empty collection sized for capacity records.
// If capacity <= 0 no preallocation is done.
func NewCollection(capacity int) *Collection {
	if capacity < 0 {
		capacity = 0
	}
	return &Collection{
		records: make([]Record, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// Add appends r, or overwrites the record with the same id.
func (c *Collection) Add(r Record) {
	if id, ok := r.ID(); ok {
		if i, seen := c.index[id]; seen {
			c.records[i] = r
			c.dupes++
			return
		}
		c.index[id] = len(c.records)
	}
	c.records = append(c.records, r)
}

// AddAll adds every record in order.
func (c *Collection) AddAll(rs []Record) {
	for _, r := range rs {
		c.Add(r)
	}
}

// Len returns the number of distinct records held.
func (c *Collection) Len() int {
	return len(c.records)
}

// Duplicates returns how many records replaced an earlier one.
func (c *Collection) Duplicates() int {
	return c.dupes
}

// Records returns the held records. The slice is owned by the collection.
func (c *Collection) Records() []Record {
	return c.records
}

// IDs returns the ids of all records that carry one, in collection order.
func (c *Collection) IDs() []string {
	out := make([]string, 0, len(c.index))
	for _, r := range c.records {
		if id, ok := r.ID(); ok {
			out = append(out, id)
		}
	}
	return out
}
