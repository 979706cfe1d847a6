package service

import (
	"context"
	"maps"
	"sort"
	"time"

	"github.com/vietanh2810/clubevents-api/internal/domain"
)

// fakeStore is an in-memory Store used by the service tests. All repositories
// share the same maps, so reads inside a Transact see earlier writes, like
// they would against one database connection.
type fakeStore struct {
	nextID uint

	// When set, AddBillLine fails with this error. Lets tests break a
	// transaction partway through.
	failAddBillLine error

	events       map[uint]domain.Event
	organizers   map[uint]domain.Organizer
	participants map[uint]domain.Participant

	degreeLevels    map[uint]domain.DegreeLevel
	subDegreeLevels map[uint]domain.SubDegreeLevel
	records         map[uint]domain.DegreeRecord

	contacts      map[uint]domain.Contact
	members       map[uint]domain.Member
	seasons       map[uint]domain.Season
	subscriptions map[[2]uint]bool
	activities    map[uint]domain.Activity

	articles  map[uint]domain.Article
	customers map[uint]domain.CustomerAccount
	bills     map[uint]domain.Bill
	lines     map[uint]domain.BillLine
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:          make(map[uint]domain.Event),
		organizers:      make(map[uint]domain.Organizer),
		participants:    make(map[uint]domain.Participant),
		degreeLevels:    make(map[uint]domain.DegreeLevel),
		subDegreeLevels: make(map[uint]domain.SubDegreeLevel),
		records:         make(map[uint]domain.DegreeRecord),
		contacts:        make(map[uint]domain.Contact),
		members:         make(map[uint]domain.Member),
		seasons:         make(map[uint]domain.Season),
		subscriptions:   make(map[[2]uint]bool),
		activities:      make(map[uint]domain.Activity),
		articles:        make(map[uint]domain.Article),
		customers:       make(map[uint]domain.CustomerAccount),
		bills:           make(map[uint]domain.Bill),
		lines:           make(map[uint]domain.BillLine),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) Events() EventRepository          { return (*fakeEventRepo)(s) }
func (s *fakeStore) Catalog() CatalogRepository       { return (*fakeCatalogRepo)(s) }
func (s *fakeStore) Degrees() DegreeRepository        { return (*fakeDegreeRepo)(s) }
func (s *fakeStore) Membership() MembershipRepository { return (*fakeMembershipRepo)(s) }
func (s *fakeStore) Billing() BillingEngine           { return (*fakeBillingRepo)(s) }

// Transact mimics a database transaction: a snapshot is taken up front and
// restored when fn errors, so partial writes never survive a failure.
func (s *fakeStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	saved := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(saved)
		return err
	}
	return nil
}

func (s *fakeStore) snapshot() fakeStore {
	return fakeStore{
		nextID:          s.nextID,
		events:          maps.Clone(s.events),
		organizers:      maps.Clone(s.organizers),
		participants:    maps.Clone(s.participants),
		degreeLevels:    maps.Clone(s.degreeLevels),
		subDegreeLevels: maps.Clone(s.subDegreeLevels),
		records:         maps.Clone(s.records),
		contacts:        maps.Clone(s.contacts),
		members:         maps.Clone(s.members),
		seasons:         maps.Clone(s.seasons),
		subscriptions:   maps.Clone(s.subscriptions),
		activities:      maps.Clone(s.activities),
		articles:        maps.Clone(s.articles),
		customers:       maps.Clone(s.customers),
		bills:           maps.Clone(s.bills),
		lines:           maps.Clone(s.lines),
	}
}

func (s *fakeStore) restore(saved fakeStore) {
	saved.failAddBillLine = s.failAddBillLine
	*s = saved
}

// Seeding helpers.

func (s *fakeStore) seedEvent(event domain.Event) domain.Event {
	event.ID = s.id()
	s.events[event.ID] = event
	return event
}

func (s *fakeStore) seedOrganizer(organizer domain.Organizer) domain.Organizer {
	organizer.ID = s.id()
	s.organizers[organizer.ID] = organizer
	return organizer
}

func (s *fakeStore) seedParticipant(participant domain.Participant) domain.Participant {
	participant.ID = s.id()
	s.participants[participant.ID] = participant
	return participant
}

func (s *fakeStore) seedDegreeLevel(level domain.DegreeLevel) domain.DegreeLevel {
	level.ID = s.id()
	s.degreeLevels[level.ID] = level
	return level
}

func (s *fakeStore) seedSubDegreeLevel(level domain.SubDegreeLevel) domain.SubDegreeLevel {
	level.ID = s.id()
	s.subDegreeLevels[level.ID] = level
	return level
}

func (s *fakeStore) seedRecord(record domain.DegreeRecord) domain.DegreeRecord {
	record.ID = s.id()
	s.records[record.ID] = record
	return record
}

func (s *fakeStore) seedContact(contact domain.Contact) domain.Contact {
	contact.ID = s.id()
	s.contacts[contact.ID] = contact
	return contact
}

func (s *fakeStore) seedMember(member domain.Member) domain.Member {
	member.ID = s.id()
	s.members[member.ID] = member
	return member
}

func (s *fakeStore) seedSeason(season domain.Season) domain.Season {
	season.ID = s.id()
	s.seasons[season.ID] = season
	return season
}

func (s *fakeStore) seedActivity(activity domain.Activity) domain.Activity {
	activity.ID = s.id()
	s.activities[activity.ID] = activity
	return activity
}

func (s *fakeStore) seedArticle(article domain.Article) domain.Article {
	article.ID = s.id()
	s.articles[article.ID] = article
	return article
}

func (s *fakeStore) seedSubscription(memberID, seasonID uint) {
	s.subscriptions[[2]uint{memberID, seasonID}] = true
}

func (s *fakeStore) billLines(billID uint) []domain.BillLine {
	var lines []domain.BillLine
	for _, line := range s.lines {
		if line.BillID == billID {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines
}

// Event repository.

type fakeEventRepo fakeStore

func (r *fakeEventRepo) store() *fakeStore { return (*fakeStore)(r) }

func (r *fakeEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	return r.store().seedEvent(event), nil
}

func (r *fakeEventRepo) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return domain.Event{}, ErrEventNotFound
	}

	organizers, _ := r.FindOrganizersByEventID(ctx, id)
	participants, _ := r.FindParticipantsByEventID(ctx, id)
	event.Organizers = organizers
	event.Participants = participants

	return event, nil
}

func (r *fakeEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	ids := make([]uint, 0, len(r.events))
	for id := range r.events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	events := make([]domain.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, r.events[id])
	}
	return events, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	if _, ok := r.events[event.ID]; !ok {
		return domain.Event{}, ErrEventNotFound
	}

	stored := event
	stored.Organizers = nil
	stored.Participants = nil
	r.events[event.ID] = stored

	return event, nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(r.events, id)

	for oID, o := range r.organizers {
		if o.EventID == id {
			delete(r.organizers, oID)
		}
	}
	for pID, p := range r.participants {
		if p.EventID == id {
			delete(r.participants, pID)
		}
	}
	for rID, rec := range r.records {
		if rec.EventID != nil && *rec.EventID == id {
			rec.EventID = nil
			r.records[rID] = rec
		}
	}

	return nil
}

func (r *fakeEventRepo) CreateOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	return r.store().seedOrganizer(organizer), nil
}

func (r *fakeEventRepo) FindOrganizerByID(ctx context.Context, id uint) (domain.Organizer, error) {
	organizer, ok := r.organizers[id]
	if !ok {
		return domain.Organizer{}, ErrOrganizerNotFound
	}
	return organizer, nil
}

func (r *fakeEventRepo) FindOrganizersByEventID(ctx context.Context, eventID uint) ([]domain.Organizer, error) {
	var organizers []domain.Organizer
	for _, o := range r.organizers {
		if o.EventID == eventID {
			organizers = append(organizers, o)
		}
	}
	sort.Slice(organizers, func(i, j int) bool { return organizers[i].ID < organizers[j].ID })
	return organizers, nil
}

func (r *fakeEventRepo) UpdateOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	if _, ok := r.organizers[organizer.ID]; !ok {
		return domain.Organizer{}, ErrOrganizerNotFound
	}
	r.organizers[organizer.ID] = organizer
	return organizer, nil
}

func (r *fakeEventRepo) DeleteOrganizer(ctx context.Context, id uint) error {
	if _, ok := r.organizers[id]; !ok {
		return ErrOrganizerNotFound
	}
	delete(r.organizers, id)
	return nil
}

func (r *fakeEventRepo) CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	return r.store().seedParticipant(participant), nil
}

func (r *fakeEventRepo) FindParticipantByID(ctx context.Context, id uint) (domain.Participant, error) {
	participant, ok := r.participants[id]
	if !ok {
		return domain.Participant{}, ErrParticipantNotFound
	}
	return participant, nil
}

func (r *fakeEventRepo) FindParticipantsByEventID(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	var participants []domain.Participant
	for _, p := range r.participants {
		if p.EventID == eventID {
			participants = append(participants, p)
		}
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].ID < participants[j].ID })
	return participants, nil
}

func (r *fakeEventRepo) FindParticipantsByBillID(ctx context.Context, billID uint) ([]domain.Participant, error) {
	var participants []domain.Participant
	for _, p := range r.participants {
		if p.BillID != nil && *p.BillID == billID {
			participants = append(participants, p)
		}
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].ID < participants[j].ID })
	return participants, nil
}

func (r *fakeEventRepo) UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	if _, ok := r.participants[participant.ID]; !ok {
		return domain.Participant{}, ErrParticipantNotFound
	}
	r.participants[participant.ID] = participant
	return participant, nil
}

func (r *fakeEventRepo) DeleteParticipant(ctx context.Context, id uint) error {
	if _, ok := r.participants[id]; !ok {
		return ErrParticipantNotFound
	}
	delete(r.participants, id)
	return nil
}

// Catalog repository.

type fakeCatalogRepo fakeStore

func (r *fakeCatalogRepo) store() *fakeStore { return (*fakeStore)(r) }

func (r *fakeCatalogRepo) CreateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error) {
	for _, existing := range r.degreeLevels {
		if existing.Name == level.Name && equalUintPtr(existing.ActivityID, level.ActivityID) {
			return domain.DegreeLevel{}, ErrDegreeLevelExists
		}
	}
	return r.store().seedDegreeLevel(level), nil
}

func (r *fakeCatalogRepo) FindDegreeLevelByID(ctx context.Context, id uint) (domain.DegreeLevel, error) {
	level, ok := r.degreeLevels[id]
	if !ok {
		return domain.DegreeLevel{}, ErrDegreeLevelNotFound
	}
	return level, nil
}

func (r *fakeCatalogRepo) FindAllDegreeLevels(ctx context.Context) ([]domain.DegreeLevel, error) {
	levels := make([]domain.DegreeLevel, 0, len(r.degreeLevels))
	for _, level := range r.degreeLevels {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Level > levels[j].Level })
	return levels, nil
}

func (r *fakeCatalogRepo) UpdateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error) {
	if _, ok := r.degreeLevels[level.ID]; !ok {
		return domain.DegreeLevel{}, ErrDegreeLevelNotFound
	}
	r.degreeLevels[level.ID] = level
	return level, nil
}

func (r *fakeCatalogRepo) DeleteDegreeLevel(ctx context.Context, id uint) error {
	if _, ok := r.degreeLevels[id]; !ok {
		return ErrDegreeLevelNotFound
	}
	delete(r.degreeLevels, id)
	return nil
}

func (r *fakeCatalogRepo) CreateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error) {
	for _, existing := range r.subDegreeLevels {
		if existing.Name == level.Name {
			return domain.SubDegreeLevel{}, ErrSubDegreeLevelExists
		}
	}
	return r.store().seedSubDegreeLevel(level), nil
}

func (r *fakeCatalogRepo) FindSubDegreeLevelByID(ctx context.Context, id uint) (domain.SubDegreeLevel, error) {
	level, ok := r.subDegreeLevels[id]
	if !ok {
		return domain.SubDegreeLevel{}, ErrSubDegreeLevelNotFound
	}
	return level, nil
}

func (r *fakeCatalogRepo) FindAllSubDegreeLevels(ctx context.Context) ([]domain.SubDegreeLevel, error) {
	levels := make([]domain.SubDegreeLevel, 0, len(r.subDegreeLevels))
	for _, level := range r.subDegreeLevels {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Level > levels[j].Level })
	return levels, nil
}

func (r *fakeCatalogRepo) UpdateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error) {
	if _, ok := r.subDegreeLevels[level.ID]; !ok {
		return domain.SubDegreeLevel{}, ErrSubDegreeLevelNotFound
	}
	r.subDegreeLevels[level.ID] = level
	return level, nil
}

func (r *fakeCatalogRepo) DeleteSubDegreeLevel(ctx context.Context, id uint) error {
	if _, ok := r.subDegreeLevels[id]; !ok {
		return ErrSubDegreeLevelNotFound
	}
	delete(r.subDegreeLevels, id)
	return nil
}

// Degree repository.

type fakeDegreeRepo fakeStore

func (r *fakeDegreeRepo) store() *fakeStore { return (*fakeStore)(r) }

func (r *fakeDegreeRepo) load(record domain.DegreeRecord) domain.DegreeRecord {
	if level, ok := r.degreeLevels[record.DegreeLevelID]; ok {
		record.DegreeLevel = &level
	}
	if record.SubDegreeLevelID != nil {
		if level, ok := r.subDegreeLevels[*record.SubDegreeLevelID]; ok {
			record.SubDegreeLevel = &level
		}
	}
	return record
}

func (r *fakeDegreeRepo) CreateRecord(ctx context.Context, record domain.DegreeRecord) (domain.DegreeRecord, error) {
	return r.load(r.store().seedRecord(record)), nil
}

func (r *fakeDegreeRepo) FindRecordByID(ctx context.Context, id uint) (domain.DegreeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return domain.DegreeRecord{}, ErrDegreeRecordNotFound
	}
	return r.load(record), nil
}

func (r *fakeDegreeRepo) FindRecordsByMemberID(ctx context.Context, memberID uint) ([]domain.DegreeRecord, error) {
	var records []domain.DegreeRecord
	for _, record := range r.records {
		if record.MemberID == memberID {
			records = append(records, r.load(record))
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].RankKey() > records[j].RankKey() })
	return records, nil
}

func (r *fakeDegreeRepo) FindHighestRecord(ctx context.Context, memberID, activityID uint) (domain.DegreeRecord, error) {
	var best *domain.DegreeRecord
	for _, record := range r.records {
		if record.MemberID != memberID {
			continue
		}
		loaded := r.load(record)
		if loaded.DegreeLevel == nil || loaded.DegreeLevel.ActivityID == nil || *loaded.DegreeLevel.ActivityID != activityID {
			continue
		}
		if best == nil || loaded.RankKey() > best.RankKey() {
			copied := loaded
			best = &copied
		}
	}
	if best == nil {
		return domain.DegreeRecord{}, ErrDegreeRecordNotFound
	}
	return *best, nil
}

func (r *fakeDegreeRepo) FindRecordsInRange(ctx context.Context, start, end time.Time, activityID *uint) ([]domain.DegreeRecord, error) {
	var records []domain.DegreeRecord
	for _, record := range r.records {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		loaded := r.load(record)
		if activityID != nil {
			if loaded.DegreeLevel == nil || loaded.DegreeLevel.ActivityID == nil || *loaded.DegreeLevel.ActivityID != *activityID {
				continue
			}
		}
		records = append(records, loaded)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (r *fakeDegreeRepo) DeleteRecord(ctx context.Context, id uint) error {
	if _, ok := r.records[id]; !ok {
		return ErrDegreeRecordNotFound
	}
	delete(r.records, id)
	return nil
}

// Membership repository.

type fakeMembershipRepo fakeStore

func (r *fakeMembershipRepo) FindContactByID(ctx context.Context, id uint) (domain.Contact, error) {
	contact, ok := r.contacts[id]
	if !ok {
		return domain.Contact{}, ErrContactNotFound
	}
	return contact, nil
}

func (r *fakeMembershipRepo) FindMemberByContactID(ctx context.Context, contactID uint) (domain.Member, error) {
	for _, member := range r.members {
		if member.ContactID == contactID {
			return member, nil
		}
	}
	return domain.Member{}, ErrMemberNotFound
}

func (r *fakeMembershipRepo) SeasonForDate(ctx context.Context, date time.Time) (domain.Season, error) {
	for _, season := range r.seasons {
		if season.Contains(date) {
			return season, nil
		}
	}
	return domain.Season{}, ErrSeasonNotFound
}

func (r *fakeMembershipRepo) FindSeasonByID(ctx context.Context, id uint) (domain.Season, error) {
	season, ok := r.seasons[id]
	if !ok {
		return domain.Season{}, ErrSeasonNotFound
	}
	return season, nil
}

func (r *fakeMembershipRepo) HasActiveSubscription(ctx context.Context, memberID, seasonID uint) (bool, error) {
	return r.subscriptions[[2]uint{memberID, seasonID}], nil
}

func (r *fakeMembershipRepo) FindAllActivities(ctx context.Context) ([]domain.Activity, error) {
	activities := make([]domain.Activity, 0, len(r.activities))
	for _, activity := range r.activities {
		activities = append(activities, activity)
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].ID < activities[j].ID })
	return activities, nil
}

func (r *fakeMembershipRepo) FindActivityByID(ctx context.Context, id uint) (domain.Activity, error) {
	activity, ok := r.activities[id]
	if !ok {
		return domain.Activity{}, ErrActivityNotFound
	}
	return activity, nil
}

// Billing engine.

type fakeBillingRepo fakeStore

func (r *fakeBillingRepo) store() *fakeStore { return (*fakeStore)(r) }

func (r *fakeBillingRepo) FindArticleByID(ctx context.Context, id uint) (domain.Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return domain.Article{}, ErrArticleNotFound
	}
	return article, nil
}

func (r *fakeBillingRepo) GetOrCreateCustomer(ctx context.Context, contactID uint) (domain.CustomerAccount, error) {
	for _, customer := range r.customers {
		if customer.ContactID == contactID {
			return customer, nil
		}
	}

	customer := domain.CustomerAccount{ID: r.store().id(), ContactID: contactID}
	r.customers[customer.ID] = customer
	return customer, nil
}

// FindOpenStandardBill only considers bills at least one participant is
// linked to, mirroring the EXISTS clause of the real query.
func (r *fakeBillingRepo) FindOpenStandardBill(ctx context.Context, customerID uint) (domain.Bill, error) {
	var found *domain.Bill
	for _, bill := range r.bills {
		if bill.CustomerID != customerID || bill.Type != domain.BillTypeStandard || bill.Status != domain.BillStatusBuilding {
			continue
		}

		linked := false
		for _, p := range r.participants {
			if p.BillID != nil && *p.BillID == bill.ID {
				linked = true
				break
			}
		}
		if !linked {
			continue
		}

		if found == nil || bill.Date.After(found.Date) {
			copied := bill
			found = &copied
		}
	}
	if found == nil {
		return domain.Bill{}, ErrBillNotFound
	}
	return *found, nil
}

func (r *fakeBillingRepo) CreateBill(ctx context.Context, bill domain.Bill) (domain.Bill, error) {
	bill.ID = r.store().id()
	r.bills[bill.ID] = bill
	return bill, nil
}

func (r *fakeBillingRepo) FindBillByID(ctx context.Context, id uint) (domain.Bill, error) {
	bill, ok := r.bills[id]
	if !ok {
		return domain.Bill{}, ErrBillNotFound
	}
	bill.Lines = r.store().billLines(id)
	return bill, nil
}

func (r *fakeBillingRepo) SaveBillComment(ctx context.Context, billID uint, comment string) error {
	bill, ok := r.bills[billID]
	if !ok {
		return ErrBillNotFound
	}
	bill.Comment = comment
	r.bills[billID] = bill
	return nil
}

func (r *fakeBillingRepo) DeleteBillLines(ctx context.Context, billID uint) error {
	for id, line := range r.lines {
		if line.BillID == billID {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *fakeBillingRepo) AddBillLine(ctx context.Context, line domain.BillLine) (domain.BillLine, error) {
	if r.failAddBillLine != nil {
		return domain.BillLine{}, r.failAddBillLine
	}

	line.ID = r.store().id()
	r.lines[line.ID] = line
	return line, nil
}

func (r *fakeBillingRepo) DeleteBill(ctx context.Context, id uint) error {
	bill, ok := r.bills[id]
	if !ok {
		return ErrBillNotFound
	}
	if reason := bill.CanDelete(); reason != "" {
		return domain.NewValidationError(reason)
	}

	delete(r.bills, id)
	_ = r.DeleteBillLines(ctx, id)

	for pID, p := range r.participants {
		if p.BillID != nil && *p.BillID == id {
			p.BillID = nil
			r.participants[pID] = p
		}
	}

	return nil
}

func equalUintPtr(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }
