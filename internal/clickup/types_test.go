package clickup

import "testing"

func TestContentFormatValidation(t *testing.T) {
	readOnly := []string{"text/plain"}
	both := []string{"markdown", "html", "text/md", "text/html"}
	invalid := []string{"", "rtf", "Markdown", "text/markdown"}

	for _, f := range both {
		if !ValidReadFormat(f) {
			t.Errorf("ValidReadFormat(%q) = false, want true", f)
		}
		if !ValidWriteFormat(f) {
			t.Errorf("ValidWriteFormat(%q) = false, want true", f)
		}
	}
	for _, f := range readOnly {
		if !ValidReadFormat(f) {
			t.Errorf("ValidReadFormat(%q) = false, want true", f)
		}
		if ValidWriteFormat(f) {
			t.Errorf("ValidWriteFormat(%q) = true, want false", f)
		}
	}
	for _, f := range invalid {
		if ValidReadFormat(f) {
			t.Errorf("ValidReadFormat(%q) = true, want false", f)
		}
		if ValidWriteFormat(f) {
			t.Errorf("ValidWriteFormat(%q) = true, want false", f)
		}
	}
}

func TestCreateDocRequestHasAnchor(t *testing.T) {
	if (&CreateDocRequest{Name: "d"}).HasAnchor() {
		t.Error("request without anchor should report HasAnchor() == false")
	}
	anchored := []CreateDocRequest{
		{WorkspaceID: "9011"},
		{SpaceID: "123"},
		{FolderID: "456"},
	}
	for _, req := range anchored {
		if !req.HasAnchor() {
			t.Errorf("request %+v should report HasAnchor() == true", req)
		}
	}
}

func TestUpdateRequestsHasChanges(t *testing.T) {
	name := "renamed"
	content := "body"
	public := true
	pos := 2.0

	if (&UpdateDocRequest{}).HasChanges() {
		t.Error("empty doc update should have no changes")
	}
	if !(&UpdateDocRequest{Name: &name}).HasChanges() {
		t.Error("doc update with name should have changes")
	}
	if !(&UpdateDocRequest{Public: &public}).HasChanges() {
		t.Error("doc update with public should have changes")
	}

	if (&UpdatePageRequest{}).HasChanges() {
		t.Error("empty page update should have no changes")
	}
	// Content format alone is not a change, it only qualifies content
	if (&UpdatePageRequest{ContentFormat: FormatHTML}).HasChanges() {
		t.Error("page update with only a content format should have no changes")
	}
	if !(&UpdatePageRequest{Content: &content, ContentFormat: FormatHTML}).HasChanges() {
		t.Error("page update with content should have changes")
	}
	if !(&UpdatePageRequest{Position: &pos}).HasChanges() {
		t.Error("page update with position should have changes")
	}

	if (&UpdateSharingRequest{}).HasChanges() {
		t.Error("empty sharing update should have no changes")
	}
	fields := []string{"name"}
	if !(&UpdateSharingRequest{PublicFields: &fields}).HasChanges() {
		t.Error("sharing update with public fields should have changes")
	}
	if !(&UpdateSharingRequest{GuestSharing: &public}).HasChanges() {
		t.Error("sharing update with guest sharing should have changes")
	}
}
