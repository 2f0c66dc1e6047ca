package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/yigit/mentorhub/internal/app/models"
)

// MemoryStore keeps mentors and students in process memory. It backs the
// "memory" driver and the package tests; one mutex makes every operation atomic.
type MemoryStore struct {
	mu       sync.Mutex
	mentors  map[string]models.Mentor
	students map[string]models.Student
	order    []string // student insertion order
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mentors:  make(map[string]models.Mentor),
		students: make(map[string]models.Student),
	}
}

// NewMemoryRepositories returns repositories backed by one shared MemoryStore
func NewMemoryRepositories(store *MemoryStore) *Repositories {
	return &Repositories{
		Mentors:  &MemoryMentorRepository{store: store},
		Students: &MemoryStudentRepository{store: store},
	}
}

func copyRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	return models.StringPtr(*ref)
}

func copyStudent(s models.Student) *models.Student {
	s.CurrentMentorID = copyRef(s.CurrentMentorID)
	s.PreviousMentorID = copyRef(s.PreviousMentorID)
	return &s
}

// MemoryMentorRepository is the in-memory MentorRepository
type MemoryMentorRepository struct {
	store *MemoryStore
}

// Create stores a copy of the mentor under a new id
func (r *MemoryMentorRepository) Create(_ context.Context, mentor *models.Mentor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	mentor.ID = uuid.NewString()
	r.store.mentors[mentor.ID] = *mentor
	return nil
}

// FindByID returns a copy of the stored mentor
func (r *MemoryMentorRepository) FindByID(_ context.Context, id string) (*models.Mentor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.mentors[id]
	if !ok {
		return nil, ErrMentorNotFound
	}
	return &m, nil
}

// MemoryStudentRepository is the in-memory StudentRepository
type MemoryStudentRepository struct {
	store *MemoryStore
}

// Create stores a copy of the student under a new id
func (r *MemoryStudentRepository) Create(_ context.Context, student *models.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, ref := range []*string{student.CurrentMentorID, student.PreviousMentorID} {
		if ref == nil {
			continue
		}
		if _, ok := r.store.mentors[*ref]; !ok {
			return ErrMentorNotFound
		}
	}

	student.ID = uuid.NewString()
	r.store.students[student.ID] = *copyStudent(*student)
	r.store.order = append(r.store.order, student.ID)
	return nil
}

// FindByID returns a copy of the stored student
func (r *MemoryStudentRepository) FindByID(_ context.Context, id string) (*models.Student, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.students[id]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return copyStudent(s), nil
}

// AssignUnassigned assigns every listed student that has no current mentor
func (r *MemoryStudentRepository) AssignUnassigned(_ context.Context, mentorID string, studentIDs []string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.mentors[mentorID]; !ok {
		return 0, ErrMentorNotFound
	}

	var matched int64
	seen := make(map[string]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		s, ok := r.store.students[id]
		if !ok || s.HasMentor() {
			continue
		}
		s.CurrentMentorID = models.StringPtr(mentorID)
		r.store.students[id] = s
		matched++
	}
	return matched, nil
}

// SwapMentor changes the mentor only if the current one still equals expected
func (r *MemoryStudentRepository) SwapMentor(_ context.Context, studentID string, expected *string, newMentorID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.mentors[newMentorID]; !ok {
		return false, ErrMentorNotFound
	}
	s, ok := r.store.students[studentID]
	if !ok {
		return false, ErrStudentNotFound
	}
	if !models.SameMentorRef(s.CurrentMentorID, expected) {
		return false, nil
	}

	s.PreviousMentorID = copyRef(expected)
	s.CurrentMentorID = models.StringPtr(newMentorID)
	r.store.students[studentID] = s
	return true, nil
}

// FindByCurrentMentor lists assigned students in insertion order
func (r *MemoryStudentRepository) FindByCurrentMentor(_ context.Context, mentorID string) ([]*models.Student, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	students := []*models.Student{}
	for _, id := range r.store.order {
		s := r.store.students[id]
		if s.HasMentor() && *s.CurrentMentorID == mentorID {
			students = append(students, copyStudent(s))
		}
	}
	return students, nil
}
