package service

import (
	"errors"
	"testing"

	"github.com/rastechno/internal/db"
)

func setupContactService(t *testing.T) (*ContactService, func()) {
	t.Helper()
	gdb, cleanup := openTestDB(t, &db.ContactMessage{})
	return NewContactService(gdb), cleanup
}

func TestCreateContactMessageTrimsFields(t *testing.T) {
	svc, cleanup := setupContactService(t)
	defer cleanup()

	item, err := svc.Create(ContactInput{
		Name:    "  张三  ",
		Email:   " zhang@example.com ",
		Message: " 想咨询云迁移方案 ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if item.Name != "张三" || item.Email != "zhang@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", item)
	}
	if item.IsRead {
		t.Fatal("expected new message to be unread")
	}
}

func TestCreateContactMessageValidatesInput(t *testing.T) {
	svc, cleanup := setupContactService(t)
	defer cleanup()

	cases := []ContactInput{
		{Email: "a@b.c", Message: "m"},
		{Name: "n", Email: "bad-email", Message: "m"},
		{Name: "n", Email: "a@b.c"},
	}
	for _, input := range cases {
		if _, err := svc.Create(input); !errors.Is(err, ErrMessageInvalidInput) {
			t.Fatalf("expected ErrMessageInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestSetReadTogglesMessage(t *testing.T) {
	svc, cleanup := setupContactService(t)
	defer cleanup()

	item, err := svc.Create(ContactInput{Name: "n", Email: "a@b.c", Message: "m"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	read, err := svc.SetRead(item.ID, true)
	if err != nil {
		t.Fatalf("SetRead returned error: %v", err)
	}
	if !read.IsRead {
		t.Fatal("expected message to be marked read")
	}

	if _, err := svc.SetRead(999, true); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}
