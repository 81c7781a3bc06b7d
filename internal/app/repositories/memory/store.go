// Package memory is an in-process storage engine with the same semantics as the
// PostgreSQL repositories: unique student emails, one medical information per
// student, foreign key checks, cascade delete and server-set timestamps.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// Store holds every table. The zero value is not usable; call NewStore.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	students map[int64]*models.Student
	records  map[int64]*models.AcademicRecord
	medical  map[int64]*models.MedicalInformation

	nextStudentID int64
	nextRecordID  int64
	nextMedicalID int64

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		students: make(map[int64]*models.Student),
		records:  make(map[int64]*models.AcademicRecord),
		medical:  make(map[int64]*models.MedicalInformation),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

type txKey struct{}

// WithinTransaction runs fn with exclusive write access to the store. If fn returns
// an error every change it made is discarded. Nested calls join the outer transaction.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.restore(snap)
		logger.Debug().Err(err).Msg("Memory transaction rolled back")
		return err
	}
	return nil
}

type snapshot struct {
	students                                   map[int64]*models.Student
	records                                    map[int64]*models.AcademicRecord
	medical                                    map[int64]*models.MedicalInformation
	nextStudentID, nextRecordID, nextMedicalID int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		students:      make(map[int64]*models.Student, len(s.students)),
		records:       make(map[int64]*models.AcademicRecord, len(s.records)),
		medical:       make(map[int64]*models.MedicalInformation, len(s.medical)),
		nextStudentID: s.nextStudentID,
		nextRecordID:  s.nextRecordID,
		nextMedicalID: s.nextMedicalID,
	}
	for id, st := range s.students {
		snap.students[id] = copyStudent(st)
	}
	for id, rec := range s.records {
		snap.records[id] = copyAcademicRecord(rec)
	}
	for id, m := range s.medical {
		snap.medical[id] = copyMedicalInformation(m)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = snap.students
	s.records = snap.records
	s.medical = snap.medical
	s.nextStudentID = snap.nextStudentID
	s.nextRecordID = snap.nextRecordID
	s.nextMedicalID = snap.nextMedicalID
}

// Students returns the student table.
func (s *Store) Students() *StudentRepository {
	return &StudentRepository{store: s}
}

// AcademicRecords returns the academic record table.
func (s *Store) AcademicRecords() *AcademicRecordRepository {
	return &AcademicRecordRepository{store: s}
}

// MedicalInformation returns the medical information table.
func (s *Store) MedicalInformation() *MedicalInformationRepository {
	return &MedicalInformationRepository{store: s}
}

// Rows are copied on the way in and out so callers never share memory with the store.

func copyStudent(st *models.Student) *models.Student {
	c := *st
	c.AcademicRecords = nil
	c.MedicalInfo = nil
	return &c
}

func copyAcademicRecord(rec *models.AcademicRecord) *models.AcademicRecord {
	c := *rec
	if rec.Major != nil {
		major := *rec.Major
		c.Major = &major
	}
	if rec.GPA != nil {
		gpa := *rec.GPA
		c.GPA = &gpa
	}
	return &c
}

func copyMedicalInformation(m *models.MedicalInformation) *models.MedicalInformation {
	c := *m
	return &c
}
