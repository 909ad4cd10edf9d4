package httpapi

import (
	"net/http"
	"testing"
)

type loginBody struct {
	Student  string `json:"student"`
	Password string `json:"password"`
}

type loginResult struct {
	Token   string         `json:"token"`
	Student studentProfile `json:"student"`
}

func TestLogin_ByName(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/auth/login", loginBody{Student: "maya", Password: "sunshine"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp loginResult
	decodeInto(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("login returned no token")
	}
	if resp.Student.ID != f.student.PublicID {
		t.Errorf("student id = %q, want %q", resp.Student.ID, f.student.PublicID)
	}

	// The issued token opens the protected routes.
	w = f.do(http.MethodGet, f.studentPath(""), nil, resp.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("profile with fresh token: status = %d", w.Code)
	}
}

func TestLogin_ByPublicID(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/auth/login", loginBody{Student: f.student.PublicID, Password: "sunshine"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/auth/login", loginBody{Student: "maya", Password: "moonlight"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errorCode(t, w); code != "unauthorized" {
		t.Errorf("error code = %q", code)
	}
}

func TestLogin_UnknownStudent(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/auth/login", loginBody{Student: "nobody", Password: "sunshine"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/auth/login", loginBody{Student: "maya"}, "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if code := errorCode(t, w); code != "validation" {
		t.Errorf("error code = %q", code)
	}
}

func TestLogout(t *testing.T) {
	f := newFixture(t)

	w := f.post("/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}

	// The token is dead afterwards.
	w = f.get(f.studentPath(""))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status after logout = %d, want 401", w.Code)
	}
}

func TestCreateStudent(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{"name": "omar", "grade": 5, "password": "blue whale"}
	w := f.post("/api/v1/students", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var profile studentProfile
	decodeInto(t, w, &profile)
	if profile.ID == "" || profile.Name != "omar" || profile.Grade != 5 {
		t.Errorf("unexpected profile %+v", profile)
	}

	// The new account can log in.
	w = f.do(http.MethodPost, "/auth/login", loginBody{Student: "omar", Password: "blue whale"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login as new student: status = %d", w.Code)
	}
}

func TestCreateStudent_Validation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"grade": 4, "password": "sunshine"}},
		{"bad grade", map[string]any{"name": "zed", "grade": 13, "password": "sunshine"}},
		{"short password", map[string]any{"name": "zed", "grade": 4, "password": "abc"}},
		{"duplicate name", map[string]any{"name": "maya", "grade": 4, "password": "sunshine"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := f.post("/api/v1/students", tc.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422 (body %s)", w.Code, w.Body.String())
			}
			if code := errorCode(t, w); code != "validation" {
				t.Errorf("error code = %q", code)
			}
		})
	}
}

func TestGetStudent(t *testing.T) {
	f := newFixture(t)

	w := f.get(f.studentPath(""))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var profile studentProfile
	decodeInto(t, w, &profile)
	if profile.ID != f.student.PublicID || profile.Name != "maya" {
		t.Errorf("unexpected profile %+v", profile)
	}
}

func TestGetStudent_Unknown(t *testing.T) {
	f := newFixture(t)

	w := f.get("/api/v1/students/ghost")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if code := errorCode(t, w); code != "not_found" {
		t.Errorf("error code = %q", code)
	}
}
