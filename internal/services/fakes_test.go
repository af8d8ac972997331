package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"petlink_backend/internal/models"
	"petlink_backend/internal/repositories"
)

// In-memory repository fakes. IDs and timestamps are deterministic so tests
// can assert on ordering.

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) next() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

// ---------------- Shelter repository ----------------

type fakeShelterRepo struct {
	shelters []models.Shelter
	clock    *fakeClock
	seq      int
	failWith error
}

func newFakeShelterRepo() *fakeShelterRepo {
	return &fakeShelterRepo{clock: newFakeClock()}
}

func (f *fakeShelterRepo) addShelter(name string, status models.ShelterStatus, lat, lng *float64) *models.Shelter {
	f.seq++
	shelter := models.Shelter{
		AdminUserID: fmt.Sprintf("admin-%d", f.seq),
		Name:        name,
		Email:       strings.ToLower(name) + "@shelters.test",
		Status:      status,
		Latitude:    lat,
		Longitude:   lng,
	}
	shelter.ID = fmt.Sprintf("shelter-%d", f.seq)
	shelter.CreatedAt = f.clock.next()
	f.shelters = append(f.shelters, shelter)
	return &f.shelters[len(f.shelters)-1]
}

func (f *fakeShelterRepo) Create(shelter *models.Shelter) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.seq++
	if shelter.ID == "" {
		shelter.ID = fmt.Sprintf("shelter-%d", f.seq)
	}
	shelter.CreatedAt = f.clock.next()
	f.shelters = append(f.shelters, *shelter)
	return nil
}

func (f *fakeShelterRepo) FindByID(id string) (*models.Shelter, error) {
	for i := range f.shelters {
		if f.shelters[i].ID == id {
			copy := f.shelters[i]
			return &copy, nil
		}
	}
	return nil, repositories.ErrShelterNotFound
}

func (f *fakeShelterRepo) FindByAdminUserID(adminUserID string) (*models.Shelter, error) {
	for i := range f.shelters {
		if f.shelters[i].AdminUserID == adminUserID {
			copy := f.shelters[i]
			return &copy, nil
		}
	}
	return nil, repositories.ErrShelterNotFound
}

func (f *fakeShelterRepo) FindApproved() ([]models.Shelter, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Shelter
	for _, s := range f.shelters {
		if s.Status == models.ShelterStatusApproved {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShelterRepo) FindPending() ([]models.Shelter, error) {
	var out []models.Shelter
	for _, s := range f.shelters {
		if s.Status == models.ShelterStatusPending {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShelterRepo) UpdateStatus(id string, status models.ShelterStatus) (*models.Shelter, error) {
	for i := range f.shelters {
		if f.shelters[i].ID == id {
			f.shelters[i].Status = status
			copy := f.shelters[i]
			return &copy, nil
		}
	}
	return nil, repositories.ErrShelterNotFound
}

// ---------------- User repository ----------------

type fakeUserRepo struct {
	users map[string]*models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) addUser(name string, role models.UserRole) *models.User {
	f.seq++
	user := &models.User{
		Name:  name,
		Email: strings.ToLower(name) + "@users.test",
		Role:  role,
	}
	user.ID = fmt.Sprintf("user-%d", f.seq)
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", f.seq)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByRole(role models.UserRole) ([]models.User, error) {
	users := []models.User{}
	for _, user := range f.users {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, err := f.FindByEmail(email)
	if err == repositories.ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeUserRepo) UpdateRole(id string, role models.UserRole) error {
	user, ok := f.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Role = role
	return nil
}

// ---------------- Report repository ----------------

type fakeReportRepo struct {
	reports map[string]*models.PetReport
	history []models.RescueStatusUpdate
	clock   *fakeClock
	seq     int
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		reports: make(map[string]*models.PetReport),
		clock:   newFakeClock(),
	}
}

func (f *fakeReportRepo) Create(report *models.PetReport) error {
	f.seq++
	if report.ID == "" {
		report.ID = fmt.Sprintf("report-%d", f.seq)
	}
	report.CreatedAt = f.clock.next()
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) FindByID(id string) (*models.PetReport, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, repositories.ErrReportNotFound
	}
	copy := *report
	return &copy, nil
}

func (f *fakeReportRepo) FindOpen() ([]models.PetReport, error) {
	var out []models.PetReport
	for _, r := range f.reports {
		if r.Status == models.RescueStatusOpen {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) FindByReporter(userID string) ([]models.PetReport, error) {
	var out []models.PetReport
	for _, r := range f.reports {
		if r.UserID != nil && *r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) TransitionStatus(reportID string, status models.RescueStatus, note string) (*models.PetReport, error) {
	report, ok := f.reports[reportID]
	if !ok {
		return nil, repositories.ErrReportNotFound
	}
	if !report.Status.CanTransitionTo(status) {
		return nil, repositories.ErrInvalidRescueTransition
	}

	report.Status = status
	f.seq++
	f.history = append(f.history, models.RescueStatusUpdate{
		ID:        fmt.Sprintf("update-%d", f.seq),
		ReportID:  reportID,
		Status:    status,
		Note:      note,
		CreatedAt: f.clock.next(),
	})

	copy := *report
	return &copy, nil
}

func (f *fakeReportRepo) FindHistory(reportID string) ([]models.RescueStatusUpdate, error) {
	out := []models.RescueStatusUpdate{}
	// Newest first, matching the SQL ordering.
	for i := len(f.history) - 1; i >= 0; i-- {
		if f.history[i].ReportID == reportID {
			out = append(out, f.history[i])
		}
	}
	return out, nil
}

// ---------------- Animal repository ----------------

type fakeAnimalRepo struct {
	animals map[string]*models.Animal
	seq     int
}

func newFakeAnimalRepo() *fakeAnimalRepo {
	return &fakeAnimalRepo{animals: make(map[string]*models.Animal)}
}

func (f *fakeAnimalRepo) Create(animal *models.Animal) error {
	f.seq++
	if animal.ID == "" {
		animal.ID = fmt.Sprintf("animal-%d", f.seq)
	}
	f.animals[animal.ID] = animal
	return nil
}

func (f *fakeAnimalRepo) FindByID(id string) (*models.Animal, error) {
	animal, ok := f.animals[id]
	if !ok {
		return nil, repositories.ErrAnimalNotFound
	}
	copy := *animal
	return &copy, nil
}

func (f *fakeAnimalRepo) Search(filter repositories.AnimalSearchFilter) ([]models.Animal, int64, error) {
	var out []models.Animal
	for _, a := range f.animals {
		if !a.IsActive {
			continue
		}
		if filter.Species != "" && a.Species != filter.Species {
			continue
		}
		if filter.Breed != "" && a.Breed != filter.Breed {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAnimalRepo) FindByShelter(shelterID string) ([]models.Animal, error) {
	var out []models.Animal
	for _, a := range f.animals {
		if a.ShelterID != nil && *a.ShelterID == shelterID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAnimalRepo) Update(animal *models.Animal) error {
	if _, ok := f.animals[animal.ID]; !ok {
		return repositories.ErrAnimalNotFound
	}
	f.animals[animal.ID] = animal
	return nil
}

func (f *fakeAnimalRepo) Deactivate(id string) error {
	animal, ok := f.animals[id]
	if !ok {
		return repositories.ErrAnimalNotFound
	}
	animal.IsActive = false
	return nil
}

func (f *fakeAnimalRepo) DistinctBreeds(species string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, a := range f.animals {
		if !a.IsActive || a.Breed == "" {
			continue
		}
		if species != "" && a.Species != species {
			continue
		}
		if !seen[a.Breed] {
			seen[a.Breed] = true
			out = append(out, a.Breed)
		}
	}
	return out, nil
}

// ---------------- Adoption repository ----------------

type fakeAdoptionRepo struct {
	adoptions map[string]*models.Adoption
	history   []models.AdoptionStatusUpdate
	clock     *fakeClock
	seq       int
}

func newFakeAdoptionRepo() *fakeAdoptionRepo {
	return &fakeAdoptionRepo{
		adoptions: make(map[string]*models.Adoption),
		clock:     newFakeClock(),
	}
}

func (f *fakeAdoptionRepo) Create(adoption *models.Adoption) error {
	f.seq++
	if adoption.ID == "" {
		adoption.ID = fmt.Sprintf("adoption-%d", f.seq)
	}
	f.adoptions[adoption.ID] = adoption
	return nil
}

func (f *fakeAdoptionRepo) FindByID(id string) (*models.Adoption, error) {
	adoption, ok := f.adoptions[id]
	if !ok {
		return nil, repositories.ErrAdoptionNotFound
	}
	copy := *adoption
	return &copy, nil
}

func (f *fakeAdoptionRepo) FindByRequester(userID string) ([]models.Adoption, error) {
	var out []models.Adoption
	for _, a := range f.adoptions {
		if a.RequesterID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAdoptionRepo) FindByShelter(shelterID string) ([]models.Adoption, error) {
	var out []models.Adoption
	for _, a := range f.adoptions {
		if a.ShelterID != nil && *a.ShelterID == shelterID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAdoptionRepo) TransitionStatus(adoptionID string, status models.AdoptionStatus, note string) (*models.Adoption, error) {
	adoption, ok := f.adoptions[adoptionID]
	if !ok {
		return nil, repositories.ErrAdoptionNotFound
	}
	if !adoption.Status.CanTransitionTo(status) {
		return nil, repositories.ErrInvalidAdoptionTransition
	}

	adoption.Status = status
	f.seq++
	f.history = append(f.history, models.AdoptionStatusUpdate{
		ID:         fmt.Sprintf("update-%d", f.seq),
		AdoptionID: adoptionID,
		Status:     status,
		Note:       note,
		CreatedAt:  f.clock.next(),
	})

	copy := *adoption
	return &copy, nil
}

func (f *fakeAdoptionRepo) FindHistory(adoptionID string) ([]models.AdoptionStatusUpdate, error) {
	out := []models.AdoptionStatusUpdate{}
	for i := len(f.history) - 1; i >= 0; i-- {
		if f.history[i].AdoptionID == adoptionID {
			out = append(out, f.history[i])
		}
	}
	return out, nil
}

// ---------------- Notification repository ----------------

type fakeNotificationRepo struct {
	notifications []*models.Notification
	outboxes      []*models.EmailOutbox
	clock         *fakeClock
	seq           int
	failWith      error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{clock: newFakeClock()}
}

func (f *fakeNotificationRepo) Create(notification *models.Notification) error {
	return f.CreateWithOutbox(notification, nil)
}

func (f *fakeNotificationRepo) CreateWithOutbox(notification *models.Notification, outbox *models.EmailOutbox) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.seq++
	if notification.ID == "" {
		notification.ID = fmt.Sprintf("notification-%d", f.seq)
	}
	notification.CreatedAt = f.clock.next()
	f.notifications = append(f.notifications, notification)
	if outbox != nil {
		f.seq++
		if outbox.ID == "" {
			outbox.ID = fmt.Sprintf("outbox-%d", f.seq)
		}
		f.outboxes = append(f.outboxes, outbox)
	}
	return nil
}

func (f *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) FindByRecipient(recipientID, recipientKind string) ([]models.Notification, error) {
	out := []models.Notification{}
	for i := len(f.notifications) - 1; i >= 0; i-- {
		n := f.notifications[i]
		if n.RecipientID != nil && *n.RecipientID == recipientID && n.RecipientKind == recipientKind {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkAsRead(id string) (*models.Notification, error) {
	notification, err := f.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !notification.IsRead {
		now := f.clock.next()
		notification.IsRead = true
		notification.ReadAt = &now
	}
	return notification, nil
}

func (f *fakeNotificationRepo) GetUnreadCount(recipientID, recipientKind string) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.RecipientID != nil && *n.RecipientID == recipientID &&
			n.RecipientKind == recipientKind && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// ---------------- Helpers ----------------

func ptrFloat(v float64) *float64 {
	return &v
}

func ptrString(v string) *string {
	return &v
}
