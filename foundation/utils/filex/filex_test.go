// File: filex_test.go
// Title: Tests for File System Utility Functions
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12

package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !Exists(path) {
		t.Error("Exists(present) = false, want true")
	}
	if Exists(filepath.Join(dir, "absent.txt")) {
		t.Error("Exists(absent) = true, want false")
	}
}

func TestIsFileAndIsDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsFile(path) {
		t.Error("IsFile(file) = false, want true")
	}
	if IsFile(dir) {
		t.Error("IsFile(dir) = true, want false")
	}
	if !IsDir(dir) {
		t.Error("IsDir(dir) = false, want true")
	}
	if IsDir(path) {
		t.Error("IsDir(file) = true, want false")
	}
}

func TestWriteFileCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.txt")

	if err := WriteString(path, "inhalt", 0o644); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "inhalt" {
		t.Errorf("content = %q, want %q", string(data), "inhalt")
	}
}
