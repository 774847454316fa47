package patient

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient

	searchCalls int
	listCalls   int
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	m.listCalls++
	var items []*Patient
	for _, p := range m.patients {
		items = append(items, p)
	}
	return items, len(items), nil
}

func (m *mockRepo) Search(_ context.Context, name string, limit, offset int) ([]*Patient, int, error) {
	m.searchCalls++
	needle := strings.ToLower(name)
	var items []*Patient
	for _, p := range m.patients {
		if strings.Contains(strings.ToLower(p.FirstName), needle) ||
			strings.Contains(strings.ToLower(p.LastName), needle) {
			items = append(items, p)
		}
	}
	return items, len(items), nil
}

func TestCreatePatient(t *testing.T) {
	svc := NewService(newMockRepo())
	p := &Patient{FirstName: "Lena", LastName: "Varga"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
}

func TestCreatePatient_RequiredFields(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	cases := []Patient{
		{LastName: "Varga"},
		{FirstName: "Lena"},
		{},
	}
	for i, p := range cases {
		if err := svc.CreatePatient(context.Background(), &p); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
	if len(repo.patients) != 0 {
		t.Error("nothing should be persisted on a rejected create")
	}
}

func TestUpdatePatient(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := &Patient{FirstName: "Lena", LastName: "Varga"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.LastName = "Varga-Kis"
	if err := svc.UpdatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.patients[p.ID].LastName != "Varga-Kis" {
		t.Errorf("expected updated last name, got %s", repo.patients[p.ID].LastName)
	}

	p.FirstName = ""
	if err := svc.UpdatePatient(context.Background(), p); err == nil {
		t.Error("expected error for blank first name")
	}
}

func TestListPatients_SearchVersusList(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	for _, p := range []*Patient{
		{FirstName: "Lena", LastName: "Varga"},
		{FirstName: "Omar", LastName: "Haddad"},
	} {
		if err := svc.CreatePatient(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items, total, err := svc.ListPatients(context.Background(), "", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected 2 patients, got %d (total %d)", len(items), total)
	}
	if repo.listCalls != 1 || repo.searchCalls != 0 {
		t.Errorf("blank name should use the plain listing, got list=%d search=%d", repo.listCalls, repo.searchCalls)
	}

	items, total, err = svc.ListPatients(context.Background(), "varga", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 match, got %d (total %d)", len(items), total)
	}
	if items[0].LastName != "Varga" {
		t.Errorf("expected Varga, got %s", items[0].LastName)
	}
	if repo.searchCalls != 1 {
		t.Errorf("name filter should use the search path, got %d search calls", repo.searchCalls)
	}
}
