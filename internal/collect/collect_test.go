package collect

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	files := []ImageInput{FromBytes("a.jpg", []byte("a"))}

	tests := []struct {
		name      string
		files     []ImageInput
		placement string
		fileName  string
		wantErr   error
		want      Placement
		wantName  string
	}{
		{name: "no files", files: nil, placement: "first", wantErr: ErrNoFiles},
		{name: "empty files beats bad placement", files: []ImageInput{}, placement: "middle", wantErr: ErrNoFiles},
		{name: "bad placement", files: files, placement: "middle", wantErr: ErrInvalidPlacement},
		{name: "first", files: files, placement: "first", want: PlacementFirst},
		{name: "last mixed case", files: files, placement: " LAST ", want: PlacementLast},
		{name: "trims file name", files: files, placement: "last", fileName: "  vacation \n", want: PlacementLast, wantName: "vacation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Collect(tt.files, "notes", tt.placement, tt.fileName)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Notes.Placement)
			assert.Equal(t, tt.wantName, req.FileName)
			assert.Equal(t, "notes", req.Notes.Text)
			assert.Len(t, req.Files, len(tt.files))
		})
	}
}

func TestNotesPresent(t *testing.T) {
	assert.False(t, Notes{}.Present())
	assert.False(t, Notes{Text: " \n\t "}.Present())
	assert.True(t, Notes{Text: "A\nB"}.Present())
}

func TestInputs(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(p, []byte("png"), 0o644))

	in := FromPath(p)
	assert.Equal(t, "photo.png", in.Name)
	assertContent(t, in, "png")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote"))
	}))
	defer srv.Close()

	remote := FromURL(context.Background(), srv.URL+"/img/cat.jpg?size=large", 0)
	assert.Equal(t, "cat.jpg", remote.Name)
	assertContent(t, remote, "remote")

	assert.True(t, IsURL(srv.URL))
	assert.False(t, IsURL(p))
}

func assertContent(t *testing.T, in ImageInput, want string) {
	t.Helper()
	rc, err := in.Open()
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, want, string(b))
}
