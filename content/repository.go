package content

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"z3z/store"
)

var (
	// ErrNotFound means no item with the requested id exists in the collection.
	ErrNotFound = errors.New("content: item not found")

	// ErrEmptyContent rejects saving an item whose body formatted down to nothing.
	ErrEmptyContent = errors.New("content: content must not be empty")
)

// Repository gives read/write access to one collection. Every operation
// re-reads the backing file, mutates in memory and rewrites it in full, so
// nothing stale survives a failed write. The mutex serializes the
// read-modify-write cycle within this process; concurrent processes still
// race (last write wins), which is accepted for a single-admin blog.
type Repository struct {
	mu    sync.Mutex
	store *store.Store
	coll  Collection
}

func NewRepository(st *store.Store, coll Collection) *Repository {
	return &Repository{store: st, coll: coll}
}

func (r *Repository) Collection() Collection {
	return r.coll
}

func (r *Repository) load() ([]Item, error) {
	items := []Item{}
	if err := r.store.ReadJSONOrEmpty(r.coll.FileName(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) save(items []Item) error {
	return r.store.WriteJSON(r.coll.FileName(), items)
}

// List returns the collection in stored order. With onlyPublished it
// filters to publicly visible items.
func (r *Repository) List(onlyPublished bool) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	if !onlyPublished {
		return items, nil
	}
	published := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Published {
			published = append(published, it)
		}
	}
	return published, nil
}

// GetByID linearly searches the collection for the item with the given id.
func (r *Repository) GetByID(id int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return Item{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s id %d", ErrNotFound, r.coll, id)
}

// Fields carries the admin-submitted values for a new item. Content must
// already be run through the formatter.
type Fields struct {
	Title     string
	Content   []string
	Category  string
	Tags      []string
	Published bool
	Date      string
	Author    string
	Image     string
}

// Create assigns the next id (max existing + 1, or 1 when empty), stamps
// created_at/updated_at, appends the item and persists the collection.
func (r *Repository) Create(f Fields) (Item, error) {
	if len(f.Content) == 0 {
		return Item{}, ErrEmptyContent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return Item{}, err
	}

	newID := 1
	for _, it := range items {
		if it.ID >= newID {
			newID = it.ID + 1
		}
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	date := f.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	item := Item{
		ID:        newID,
		Title:     f.Title,
		Content:   f.Content,
		Category:  f.Category,
		Tags:      f.Tags,
		Published: f.Published,
		Date:      date,
		Author:    f.Author,
		Image:     sanitizeImageURL(f.Image),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}

	items = append(items, item)
	if err := r.save(items); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Patch holds a partial update. Nil fields keep their stored value; this is
// a shallow merge, so a non-nil Content replaces the whole sequence.
type Patch struct {
	Title     *string
	Content   []string
	Category  *string
	Tags      []string
	Published *bool
	Date      *string
	Author    *string
	Image     *string
}

// Update merges the patch into the stored item, refreshes updated_at and
// persists. Returns ErrNotFound when the id doesn't exist.
func (r *Repository) Update(id int, p Patch) (Item, error) {
	if p.Content != nil && len(p.Content) == 0 {
		return Item{}, ErrEmptyContent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return Item{}, err
	}

	idx := -1
	for i, it := range items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Item{}, fmt.Errorf("%w: %s id %d", ErrNotFound, r.coll, id)
	}

	it := items[idx]
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Content != nil {
		it.Content = p.Content
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Tags != nil {
		it.Tags = p.Tags
	}
	if p.Published != nil {
		it.Published = *p.Published
	}
	if p.Date != nil {
		it.Date = *p.Date
	}
	if p.Author != nil {
		it.Author = *p.Author
	}
	if p.Image != nil {
		it.Image = sanitizeImageURL(*p.Image)
	}
	it.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	items[idx] = it
	if err := r.save(items); err != nil {
		return Item{}, err
	}
	return it, nil
}

// Delete removes the item with the given id. The bool result distinguishes
// an actual removal from a no-op on a missing id.
func (r *Repository) Delete(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return false, err
	}

	kept := make([]Item, 0, len(items))
	removed := false
	for _, it := range items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return false, nil
	}
	if err := r.save(kept); err != nil {
		return false, err
	}
	return true, nil
}
