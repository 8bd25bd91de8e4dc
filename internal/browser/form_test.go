package browser

import "testing"

func TestStatusFromContent(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		eligible bool
		reason   string
	}{
		{"open project", "<div>مشروع مفتوح للعروض</div>", true, ""},
		{"arabic closed", "<span class='badge'>مغلق</span>", false, "project closed"},
		{"arabic completed", "<span>مكتمل</span>", false, "project closed"},
		{"english closed capitalised", "<span>Closed</span>", false, "project closed"},
		{"english closed lowercase markup", "<span class='status'>this project is closed</span>", false, "project closed"},
		{"english expired lowercase", "<div>expired</div>", false, "project closed"},
		{"already submitted arabic", "<p>تم التقديم على هذا المشروع</p>", false, "already submitted"},
		{"already submitted lowercase", "<p>already applied</p>", false, "already submitted"},
		{"empty page", "", true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status := statusFromContent(tc.content)
			if status.Eligible != tc.eligible {
				t.Fatalf("eligible = %v, want %v", status.Eligible, tc.eligible)
			}
			if status.Reason != tc.reason {
				t.Fatalf("reason = %q, want %q", status.Reason, tc.reason)
			}
		})
	}
}
