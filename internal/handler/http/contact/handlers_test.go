package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/handler/http/contact"
	"intake-backend/internal/repository"
	contactUC "intake-backend/internal/usecase/contact"
)

/* ───────── Create Handler テスト ───────── */

type stubCreateRepo struct {
	createErr   error
	lastContact *entity.Contact
}

func (s *stubCreateRepo) Create(_ context.Context, c *entity.Contact) error {
	c.ID = "64f0c5e2a1b2c3d4e5f60718"
	s.lastContact = c
	return s.createErr
}

// 以下は未使用だが、インターフェース満たすために実装
func (s *stubCreateRepo) Update(_ context.Context, _ string, _ repository.ContactUpdate) (*entity.Contact, error) {
	return nil, nil
}
func (s *stubCreateRepo) Delete(_ context.Context, _ string) error {
	return nil
}
func (s *stubCreateRepo) List(_ context.Context) ([]*entity.Contact, error) {
	return nil, nil
}
func (s *stubCreateRepo) Count(_ context.Context) (int64, error) {
	return 0, nil
}

func TestCreateHandler_Success(t *testing.T) {
	stub := &stubCreateRepo{}
	handler := contact.CreateHandler{Svc: contactUC.Service{Repo: stub}}

	body := `{
		"firstName": "Ada",
		"lastName": "Lovelace",
		"email": "ada@example.com",
		"country": "UK",
		"problems": "slow batch jobs",
		"about": "search engine"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}
	if got := rr.Body.String(); got != "Contact saved successfully" {
		t.Errorf("body = %q, want confirmation text", got)
	}
	if stub.lastContact.FirstName != "Ada" || stub.lastContact.Email != "ada@example.com" {
		t.Errorf("persisted contact = %+v, want submitted fields", stub.lastContact)
	}
	if stub.lastContact.About != "search engine" {
		t.Errorf("About = %q, want %q", stub.lastContact.About, "search engine")
	}
}

func TestCreateHandler_InvalidJSON(t *testing.T) {
	stub := &stubCreateRepo{}
	handler := contact.CreateHandler{Svc: contactUC.Service{Repo: stub}}

	body := `{"firstName": "Ada", "email":}`
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

/* ───────── Update Handler テスト ───────── */

type stubUpdateRepo struct {
	stubCreateRepo
	contact   *entity.Contact
	updateErr error
}

func (s *stubUpdateRepo) Update(_ context.Context, id string, upd repository.ContactUpdate) (*entity.Contact, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if s.contact == nil || s.contact.ID != id {
		return nil, nil
	}
	if upd.FirstName != nil {
		s.contact.FirstName = *upd.FirstName
	}
	if upd.Email != nil {
		s.contact.Email = *upd.Email
	}
	return s.contact, nil
}

func TestUpdateHandler_Success(t *testing.T) {
	stub := &stubUpdateRepo{contact: &entity.Contact{
		ID:        "64f0c5e2a1b2c3d4e5f60718",
		FirstName: "Ada",
		Email:     "ada@example.com",
	}}
	handler := contact.UpdateHandler{Svc: contactUC.Service{Repo: stub}}

	body := `{"firstName": "Grace"}`
	req := httptest.NewRequest(http.MethodPut, "/api/contacts/64f0c5e2a1b2c3d4e5f60718", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var got map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	// 識別子キーは常に "id" に正規化される
	if got["id"] != "64f0c5e2a1b2c3d4e5f60718" {
		t.Errorf(`id = %v, want the record ID under key "id"`, got["id"])
	}
	if _, leaked := got["_id"]; leaked {
		t.Error(`response leaked raw "_id" key`)
	}
	if got["firstName"] != "Grace" {
		t.Errorf("firstName = %v, want %q", got["firstName"], "Grace")
	}
	if got["email"] != "ada@example.com" {
		t.Errorf("email = %v, want unchanged", got["email"])
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	stub := &stubUpdateRepo{} // レコードなし
	handler := contact.UpdateHandler{Svc: contactUC.Service{Repo: stub}}

	body := `{"firstName": "Grace"}`
	req := httptest.NewRequest(http.MethodPut, "/api/contacts/64f0c5e2a1b2c3d4e5f60799", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestUpdateHandler_MalformedID(t *testing.T) {
	stub := &stubUpdateRepo{}
	handler := contact.UpdateHandler{Svc: contactUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodPut, "/api/contacts/not-a-hex-id", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

/* ───────── Delete Handler テスト ───────── */

type stubDeleteRepo struct {
	stubCreateRepo
	deletedIDs []string
}

func (s *stubDeleteRepo) Delete(_ context.Context, id string) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func TestDeleteHandler_Success(t *testing.T) {
	stub := &stubDeleteRepo{}
	handler := contact.DeleteHandler{Svc: contactUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodDelete, "/api/contacts/64f0c5e2a1b2c3d4e5f60718", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "Contact deleted successfully" {
		t.Errorf("body = %q, want confirmation text", got)
	}
	if len(stub.deletedIDs) != 1 || stub.deletedIDs[0] != "64f0c5e2a1b2c3d4e5f60718" {
		t.Errorf("deleted IDs = %v", stub.deletedIDs)
	}
}

func TestDeleteHandler_MissingRecordStillSucceeds(t *testing.T) {
	// 冪等: リポジトリは存在しないIDの削除もエラーにしない
	stub := &stubDeleteRepo{}
	handler := contact.DeleteHandler{Svc: contactUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodDelete, "/api/contacts/64f0c5e2a1b2c3d4e5f60799", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
}

/* ───────── List Handler テスト ───────── */

type stubListRepo struct {
	stubCreateRepo
	contacts []*entity.Contact
	listErr  error
}

func (s *stubListRepo) List(_ context.Context) ([]*entity.Contact, error) {
	return s.contacts, s.listErr
}

func (s *stubListRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.contacts)), nil
}

func TestListHandler_ContentRange(t *testing.T) {
	stub := &stubListRepo{contacts: []*entity.Contact{
		{ID: "64f0c5e2a1b2c3d4e5f60711", FirstName: "Ada"},
		{ID: "64f0c5e2a1b2c3d4e5f60712", FirstName: "Grace"},
	}}
	handler := contact.ListHandler{Svc: contactUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Range"); got != "contacts 0-1/2" {
		t.Errorf("Content-Range = %q, want %q", got, "contacts 0-1/2")
	}

	var got []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("items = %d, want 2", len(got))
	}
	if got[0]["id"] != "64f0c5e2a1b2c3d4e5f60711" {
		t.Errorf(`first item id = %v, want normalized "id" key`, got[0]["id"])
	}
}

func TestListHandler_Empty(t *testing.T) {
	stub := &stubListRepo{}
	handler := contact.ListHandler{Svc: contactUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	// 空でもJSON配列を返す（nullにしない）
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}
