// Package comments implements the per-post comment system. All comments
// live in a single comments.json object keyed by "category_postId".
package comments

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"z3z/constants"
	"z3z/store"
)

const fileName = "comments.json"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Comment is the stored record. Email and IP never leave the admin surface.
type Comment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
	Approved bool   `json:"approved"`
	IP       string `json:"ip,omitempty"`
}

// Public is the redacted view returned to the commenting visitor.
type Public struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Input carries a comment submission before validation.
type Input struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Comment  string `json:"comment"`
	PostID   string `json:"postId"`
	Category string `json:"category"`
	IP       string `json:"-"`
}

// ValidationError lists every violated rule at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "comments: " + strings.Join(e.Errors, "; ")
}

// Validate checks every rule and returns the full list of violations.
func Validate(in Input) []string {
	var errs []string
	if len(strings.TrimSpace(in.Name)) < constants.MIN_COMMENT_NAME_LENGTH {
		errs = append(errs, fmt.Sprintf("Nome deve ter pelo menos %d caracteres", constants.MIN_COMMENT_NAME_LENGTH))
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		errs = append(errs, "Email deve ser válido")
	}
	if len(strings.TrimSpace(in.Comment)) < constants.MIN_COMMENT_BODY_LENGTH {
		errs = append(errs, fmt.Sprintf("Comentário deve ter pelo menos %d caracteres", constants.MIN_COMMENT_BODY_LENGTH))
	}
	if strings.TrimSpace(in.PostID) == "" || strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "Informações do post são obrigatórias")
	}
	return errs
}

// Service reads and writes the comment store. Like the content repository
// it re-reads the file per operation and rewrites it whole under a mutex.
type Service struct {
	mu    sync.Mutex
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func bucketKey(category, postID string) string {
	return category + "_" + postID
}

func (s *Service) load() (map[string][]Comment, error) {
	buckets := map[string][]Comment{}
	if err := s.store.ReadJSONOrEmpty(fileName, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// ForPost returns every comment under category_postId, approved or not.
func (s *Service) ForPost(category, postID string) ([]Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, err := s.load()
	if err != nil {
		return nil, err
	}
	list := buckets[bucketKey(category, postID)]
	if list == nil {
		list = []Comment{}
	}
	return list, nil
}

// Add validates the submission, stores it under its post bucket and
// returns the redacted view. Validation failures come back as a
// *ValidationError with every broken rule.
func (s *Service) Add(in Input) (Public, error) {
	if errs := Validate(in); len(errs) > 0 {
		return Public{}, &ValidationError{Errors: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, err := s.load()
	if err != nil {
		return Public{}, err
	}

	c := Comment{
		ID:       newCommentID(),
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Comment:  strings.TrimSpace(in.Comment),
		Date:     time.Now().UTC().Format(time.RFC3339Nano),
		Approved: true,
		IP:       in.IP,
	}

	key := bucketKey(strings.TrimSpace(in.Category), strings.TrimSpace(in.PostID))
	buckets[key] = append(buckets[key], c)

	if err := s.store.WriteJSON(fileName, buckets); err != nil {
		return Public{}, err
	}
	return Public{ID: c.ID, Name: c.Name, Comment: c.Comment, Date: c.Date}, nil
}

// Delete scans every bucket for the globally unique comment id and removes
// the first match. Returns false when nothing matched.
func (s *Service) Delete(commentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, err := s.load()
	if err != nil {
		return false, err
	}

	found := false
	for key, list := range buckets {
		kept := make([]Comment, 0, len(list))
		for _, c := range list {
			if !found && c.ID == commentID {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		buckets[key] = kept
	}
	if !found {
		return false, nil
	}
	if err := s.store.WriteJSON(fileName, buckets); err != nil {
		return false, err
	}
	return true, nil
}

// Stats is the admin aggregate: totals per bucket plus the ten most recent
// comments across every post, newest first.
type Stats struct {
	Total  int            `json:"total"`
	ByPost map[string]int `json:"byPost"`
	Recent []Comment      `json:"recent"`
}

func (s *Service) Stats() (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, err := s.load()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{ByPost: map[string]int{}}
	var all []Comment
	for key, list := range buckets {
		stats.Total += len(list)
		stats.ByPost[key] = len(list)
		all = append(all, list...)
	}

	sort.Slice(all, func(i, j int) bool {
		ti, erri := time.Parse(time.RFC3339Nano, all[i].Date)
		tj, errj := time.Parse(time.RFC3339Nano, all[j].Date)
		if erri != nil || errj != nil {
			return all[i].Date > all[j].Date
		}
		return ti.After(tj)
	})
	if len(all) > 10 {
		all = all[:10]
	}
	stats.Recent = all
	return stats, nil
}

// Comment ids are a millisecond timestamp plus a short random suffix,
// unique and roughly sortable by creation time.
func newCommentID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}
