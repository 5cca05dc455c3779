package memory

import (
	"sync"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
)

// Store is an in-memory implementation of every repository facade. It is the
// default storage backend for development and tests; the pgsql package is the
// production one.
//
// mu guards all maps. Entry commits additionally take a per-organization
// commit mutex so commits in different organizations proceed in parallel
// while commits within one organization are serialized.
type Store struct {
	mu sync.RWMutex

	users           map[string]domain.User // by userID
	userIDsByName   map[string]string      // username -> userID
	userIDsByEmail  map[string]string      // email -> userID
	userIDsByTgID   map[string]string      // telegramID -> userID
	organizations   map[string]domain.Organization
	memberships     map[string]map[string]domain.Membership // orgID -> userID -> membership
	accounts        map[string]domain.Account
	accountOrder    map[string][]string          // orgID -> accountIDs in insertion order
	accountIDByCode map[string]map[string]string // orgID -> code -> accountID
	entries         map[string]domain.JournalEntry
	entryOrder      map[string][]string // orgID -> entryIDs in commit order
	lines           map[string][]domain.EntryLine
	contacts        map[string]domain.Contact
	contactOrder    map[string][]string // orgID -> contactIDs in insertion order
	invoices        map[string]domain.Invoice
	invoiceOrder    map[string][]string // orgID -> invoiceIDs in insertion order
	notifications   map[string]domain.Notification
	notifOrder      map[string][]string // userID -> notificationIDs in insertion order

	commitMu   sync.Mutex
	commitLock map[string]*sync.Mutex // orgID -> commit mutex
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:           make(map[string]domain.User),
		userIDsByName:   make(map[string]string),
		userIDsByEmail:  make(map[string]string),
		userIDsByTgID:   make(map[string]string),
		organizations:   make(map[string]domain.Organization),
		memberships:     make(map[string]map[string]domain.Membership),
		accounts:        make(map[string]domain.Account),
		accountOrder:    make(map[string][]string),
		accountIDByCode: make(map[string]map[string]string),
		entries:         make(map[string]domain.JournalEntry),
		entryOrder:      make(map[string][]string),
		lines:           make(map[string][]domain.EntryLine),
		contacts:        make(map[string]domain.Contact),
		contactOrder:    make(map[string][]string),
		invoices:        make(map[string]domain.Invoice),
		invoiceOrder:    make(map[string][]string),
		notifications:   make(map[string]domain.Notification),
		notifOrder:      make(map[string][]string),
		commitLock:      make(map[string]*sync.Mutex),
	}
}

// NewRepositoryProvider returns a provider where every repository is backed
// by the same store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      store,
		EntryRepo:        store,
		OrganizationRepo: store,
		UserRepo:         store,
		ContactRepo:      store,
		InvoiceRepo:      store,
		NotificationRepo: store,
	}
}

// orgCommitLock returns the commit mutex for one organization, creating it
// on first use.
func (s *Store) orgCommitLock(organizationID string) *sync.Mutex {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()
	lock, ok := s.commitLock[organizationID]
	if !ok {
		lock = &sync.Mutex{}
		s.commitLock[organizationID] = lock
	}
	return lock
}
