package validation

import (
	"strings"
	"testing"

	"github.com/Xushengqwer/blog_service/models/dto"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		ok      bool
		message string
	}{
		{"user@example.com", "user@example.com", true, ""},
		{"  user@example.com  ", "user@example.com", true, ""},
		{"not-an-email", "", false, "Invalid email address"},
		{"", "", false, "Invalid email address"},
		{strings.Repeat("a", 250) + "@example.com", "", false, "Email must be less than 255 characters"},
	}
	for i, c := range cases {
		got, err := Email(c.in)
		if c.ok {
			if err != nil {
				t.Fatalf("case %d expected ok, got err: %v", i, err)
			}
			if got != c.want {
				t.Fatalf("case %d got %q, want %q", i, got, c.want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("case %d expected error, got nil", i)
		}
		if err.Message != c.message {
			t.Fatalf("case %d got message %q, want %q", i, err.Message, c.message)
		}
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		in      string
		ok      bool
		message string
	}{
		{"Abcdef12", true, ""},
		{"abcdefgh", false, "Password must contain at least one uppercase letter"},
		{"ABCDEFG1", false, "Password must contain at least one lowercase letter"},
		{"Abcdefgh", false, "Password must contain at least one number"},
		{"Abc1", false, "Password must be at least 8 characters"},
		{"A1" + strings.Repeat("a", 71), false, "Password must be less than 72 characters"},
	}
	for i, c := range cases {
		err := Password(c.in)
		if c.ok && err != nil {
			t.Fatalf("case %d expected ok, got err: %v", i, err)
		}
		if !c.ok {
			if err == nil {
				t.Fatalf("case %d expected error, got nil", i)
			}
			if err.Message != c.message {
				t.Fatalf("case %d got message %q, want %q", i, err.Message, c.message)
			}
		}
	}
}

func TestCategories(t *testing.T) {
	if _, err := Categories(nil); err == nil || err.Message != "At least one category is required" {
		t.Fatalf("empty list: got %v", err)
	}
	if _, err := Categories([]string{"a", "b", "c", "d", "e", "f"}); err == nil || err.Message != "Maximum 5 categories allowed" {
		t.Fatalf("six categories: got %v", err)
	}
	// 数量边界先于元素校验：超长列表里混入非法元素时，报的仍是数量错误。
	if _, err := Categories([]string{"a", "b", "c", "d", "e", "bad!"}); err == nil || err.Message != "Maximum 5 categories allowed" {
		t.Fatalf("six categories with invalid entry: got %v", err)
	}
	if _, err := Categories([]string{"go", "web dev", "ci-cd"}); err != nil {
		t.Fatalf("valid categories rejected: %v", err)
	}
	if _, err := Categories([]string{"ok", "bad!"}); err == nil || err.Message != "Category can only contain letters, numbers, spaces, and hyphens" {
		t.Fatalf("invalid charset: got %v", err)
	}
	got, err := Categories([]string{"  Go  "})
	if err != nil {
		t.Fatalf("trimmed category rejected: %v", err)
	}
	if got[0] != "Go" {
		t.Fatalf("category not trimmed: %q", got[0])
	}
}

func TestCheckPostFirstErrorWins(t *testing.T) {
	req := &dto.SavePostRequest{Title: "", Content: "", Categories: nil}
	err := CheckPost(req)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Field != "title" || err.Message != "Title cannot be empty" {
		t.Fatalf("expected title error first, got %v", err)
	}

	req = &dto.SavePostRequest{Title: "Hello", Content: "", Categories: nil}
	err = CheckPost(req)
	if err == nil || err.Field != "content" {
		t.Fatalf("expected content error, got %v", err)
	}

	req = &dto.SavePostRequest{Title: "Hello", Content: "World", Categories: []string{}}
	err = CheckPost(req)
	if err == nil || err.Message != "At least one category is required" {
		t.Fatalf("expected categories error, got %v", err)
	}
}

func TestCheckPostNormalizes(t *testing.T) {
	req := &dto.SavePostRequest{
		Title:      "  A Title  ",
		Content:    "  body  ",
		Categories: []string{" Go ", "Web"},
	}
	if err := CheckPost(req); err != nil {
		t.Fatalf("valid post rejected: %v", err)
	}
	if req.Title != "A Title" || req.Content != "body" {
		t.Fatalf("title/content not trimmed: %q / %q", req.Title, req.Content)
	}
	if req.Categories[0] != "Go" || req.Categories[1] != "Web" {
		t.Fatalf("categories not trimmed: %v", req.Categories)
	}
}

func TestCheckPostOversizedContent(t *testing.T) {
	req := &dto.SavePostRequest{
		Title:      "Hello",
		Content:    strings.Repeat("x", 50001),
		Categories: []string{"Go"},
	}
	err := CheckPost(req)
	if err == nil || err.Message != "Content must be less than 50,000 characters" {
		t.Fatalf("expected content length error, got %v", err)
	}
}

func TestCheckSignIn(t *testing.T) {
	req := &dto.SignInRequest{Email: "user@example.com", Password: "weak"}
	if err := CheckSignIn(req); err != nil {
		t.Fatalf("sign-in must not enforce password strength: %v", err)
	}
	req = &dto.SignInRequest{Email: "user@example.com", Password: ""}
	if err := CheckSignIn(req); err == nil || err.Message != "Password is required" {
		t.Fatalf("expected password required, got %v", err)
	}
}

func TestCheckProfileBio(t *testing.T) {
	req := &dto.UpdateProfileRequest{Name: "Alice", Bio: nil}
	if err := CheckProfile(req); err != nil {
		t.Fatalf("nil bio rejected: %v", err)
	}
	if req.Bio == nil || *req.Bio != "" {
		t.Fatalf("nil bio not normalized to empty string: %v", req.Bio)
	}

	blank := "   "
	req = &dto.UpdateProfileRequest{Name: "Alice", Bio: &blank}
	if err := CheckProfile(req); err != nil {
		t.Fatalf("blank bio rejected: %v", err)
	}
	if *req.Bio != "" {
		t.Fatalf("blank bio not normalized: %q", *req.Bio)
	}

	long := strings.Repeat("b", 501)
	req = &dto.UpdateProfileRequest{Name: "Alice", Bio: &long}
	if err := CheckProfile(req); err == nil || err.Message != "Bio must be less than 500 characters" {
		t.Fatalf("expected bio length error, got %v", err)
	}
}
