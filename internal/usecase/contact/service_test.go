package contact_test

import (
	"context"
	"errors"
	"testing"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/repository"
	contactUC "intake-backend/internal/usecase/contact"
)

/*────────────────────  インメモリスタブ  ────────────────────*/

// very-light ContactRepository stub
type stubRepo struct {
	data   map[string]*entity.Contact
	nextID int
	err    error // 強制エラー注入用
}

func newStub() *stubRepo {
	return &stubRepo{data: map[string]*entity.Contact{}, nextID: 1}
}

/* --- repository.ContactRepository を満たす --- */

func (s *stubRepo) Create(_ context.Context, c *entity.Contact) error {
	if s.err != nil {
		return s.err
	}
	c.ID = string(rune('a' + s.nextID))
	s.nextID++
	s.data[c.ID] = c
	return nil
}

func (s *stubRepo) Update(_ context.Context, id string, upd repository.ContactUpdate) (*entity.Contact, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	if upd.FirstName != nil {
		c.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		c.LastName = *upd.LastName
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Country != nil {
		c.Country = *upd.Country
	}
	if upd.Problems != nil {
		c.Problems = *upd.Problems
	}
	if upd.About != nil {
		c.About = *upd.About
	}
	return c, nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Contact, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Contact
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

// stubNotify records dispatches without doing any work.
type stubNotify struct {
	dispatched []*entity.Contact
}

func (s *stubNotify) NotifyContactCreated(_ context.Context, c *entity.Contact) {
	s.dispatched = append(s.dispatched, c)
}

func (s *stubNotify) Shutdown(_ context.Context) error { return nil }

/*────────────────────  テストケース  ────────────────────*/

func TestCreate_PersistsAndNotifies(t *testing.T) {
	repo := newStub()
	ntf := &stubNotify{}
	svc := contactUC.Service{Repo: repo, Notify: ntf}

	c, err := svc.Create(context.Background(), contactUC.CreateInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Country:   "UK",
		Problems:  "scaling",
		About:     "heard from a friend",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.ID == "" {
		t.Error("created contact has no ID")
	}
	if got := repo.data[c.ID]; got == nil || got.Email != "ada@example.com" {
		t.Errorf("contact not persisted correctly: %+v", got)
	}
	if len(ntf.dispatched) != 1 || ntf.dispatched[0].ID != c.ID {
		t.Errorf("notification dispatched %d times, want 1 for %q", len(ntf.dispatched), c.ID)
	}
}

func TestCreate_RepoErrorSkipsNotification(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("write concern failed")
	ntf := &stubNotify{}
	svc := contactUC.Service{Repo: repo, Notify: ntf}

	_, err := svc.Create(context.Background(), contactUC.CreateInput{FirstName: "Ada"})
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if len(ntf.dispatched) != 0 {
		t.Errorf("notification dispatched after failed persist: %d", len(ntf.dispatched))
	}
}

func TestCreate_NilNotifyIsSafe(t *testing.T) {
	svc := contactUC.Service{Repo: newStub()}

	if _, err := svc.Create(context.Background(), contactUC.CreateInput{FirstName: "Ada"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
}

func TestUpdate_ReplacesOnlySubmittedFields(t *testing.T) {
	repo := newStub()
	svc := contactUC.Service{Repo: repo}

	created, _ := svc.Create(context.Background(), contactUC.CreateInput{
		FirstName: "Ada",
		Email:     "ada@example.com",
	})

	newName := "Grace"
	got, err := svc.Update(context.Background(), created.ID, repository.ContactUpdate{
		FirstName: &newName,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got.FirstName != "Grace" {
		t.Errorf("FirstName = %q, want %q", got.FirstName, "Grace")
	}
	if got.Email != "ada@example.com" {
		t.Errorf("Email = %q, want unchanged %q", got.Email, "ada@example.com")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := contactUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), "missing", repository.ContactUpdate{})
	if !errors.Is(err, contactUC.ErrContactNotFound) {
		t.Errorf("err = %v, want ErrContactNotFound", err)
	}
}

func TestUpdate_EmptyID(t *testing.T) {
	svc := contactUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), "", repository.ContactUpdate{})
	if !errors.Is(err, contactUC.ErrInvalidContactID) {
		t.Errorf("err = %v, want ErrInvalidContactID", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	repo := newStub()
	svc := contactUC.Service{Repo: repo}

	created, _ := svc.Create(context.Background(), contactUC.CreateInput{FirstName: "Ada"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete returned error: %v", err)
	}
	// 既に存在しないIDでも成功扱い
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
}

func TestList_ReturnsCount(t *testing.T) {
	repo := newStub()
	svc := contactUC.Service{Repo: repo}

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), contactUC.CreateInput{FirstName: "c"}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	contacts, total, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(contacts) != 3 || total != 3 {
		t.Errorf("List = %d items, total %d, want 3/3", len(contacts), total)
	}
}
