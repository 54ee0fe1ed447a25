package galleryapi_test

import (
	"net/http"
	"testing"
	"time"

	galleryapi "portfolio-backend/internal/api/gallery"
	"portfolio-backend/internal/apitest"
)

func TestCreateArtworkRequiresAdminToken(t *testing.T) {
	r := apitest.Setup(t)

	w := apitest.DoJSON(t, r, http.MethodPost, "/admin/artworks", map[string]string{
		"title":     "Boncuk",
		"image_url": "https://cdn.example.com/boncuk.jpg",
	}, "")
	apitest.WantStatus(t, w, http.StatusUnauthorized)
}

func TestCreateArtworkRequiresTitleAndImage(t *testing.T) {
	r := apitest.Setup(t)
	token := apitest.AdminToken(t)

	w := apitest.DoJSON(t, r, http.MethodPost, "/admin/artworks", map[string]string{
		"title": "Boncuk",
	}, token)
	apitest.WantStatus(t, w, http.StatusBadRequest)

	w = apitest.DoJSON(t, r, http.MethodGet, "/artworks", nil, "")
	apitest.WantStatus(t, w, http.StatusOK)

	var list galleryapi.ListArtworksResponse
	apitest.Decode(t, w, &list)
	if len(list.Artworks) != 0 {
		t.Fatalf("expected no artworks after rejected create, got %d", len(list.Artworks))
	}
}

func TestCreateArtworkDefaultsAndPrepends(t *testing.T) {
	r := apitest.Setup(t)
	token := apitest.AdminToken(t)

	w := apitest.DoJSON(t, r, http.MethodPost, "/admin/artworks", map[string]string{
		"title":     "Boncuk",
		"image_url": "https://cdn.example.com/boncuk.jpg",
	}, token)
	apitest.WantStatus(t, w, http.StatusCreated)

	var first galleryapi.ArtworkDTO
	apitest.Decode(t, w, &first)
	if first.ID == "" {
		t.Fatal("expected a server-assigned id")
	}
	if first.Category != "Diğer" {
		t.Fatalf("expected default category, got %q", first.Category)
	}
	if first.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("expected today's date, got %q", first.Date)
	}

	// created_at ordering needs distinguishable timestamps
	time.Sleep(5 * time.Millisecond)

	w = apitest.DoJSON(t, r, http.MethodPost, "/admin/artworks", map[string]string{
		"title":     "Karabaş",
		"image_url": "https://cdn.example.com/karabas.jpg",
		"category":  "Köpek Portresi",
		"date":      "2024-03-01",
	}, token)
	apitest.WantStatus(t, w, http.StatusCreated)

	var second galleryapi.ArtworkDTO
	apitest.Decode(t, w, &second)
	if second.ID == first.ID {
		t.Fatal("expected unique ids for each create")
	}
	if second.Category != "Köpek Portresi" || second.Date != "2024-03-01" {
		t.Fatalf("expected submitted category and date to be kept, got %q %q", second.Category, second.Date)
	}

	w = apitest.DoJSON(t, r, http.MethodGet, "/artworks", nil, "")
	apitest.WantStatus(t, w, http.StatusOK)

	var list galleryapi.ListArtworksResponse
	apitest.Decode(t, w, &list)
	if len(list.Artworks) != 2 {
		t.Fatalf("expected 2 artworks, got %d", len(list.Artworks))
	}
	if list.Artworks[0].ID != second.ID {
		t.Fatalf("expected newest artwork first, got %q", list.Artworks[0].Title)
	}

	seen := map[string]int{}
	for _, a := range list.Artworks {
		seen[a.ID]++
	}
	if seen[second.ID] != 1 {
		t.Fatalf("expected the new artwork exactly once, got %d", seen[second.ID])
	}
}

func TestDeleteArtworkRemovesOnlyMatch(t *testing.T) {
	r := apitest.Setup(t)
	token := apitest.AdminToken(t)

	ids := make([]string, 0, 3)
	for _, title := range []string{"Boncuk", "Karabaş", "Maviş"} {
		w := apitest.DoJSON(t, r, http.MethodPost, "/admin/artworks", map[string]string{
			"title":     title,
			"image_url": "https://cdn.example.com/" + title + ".jpg",
		}, token)
		apitest.WantStatus(t, w, http.StatusCreated)

		var created galleryapi.ArtworkDTO
		apitest.Decode(t, w, &created)
		ids = append(ids, created.ID)
	}

	w := apitest.DoJSON(t, r, http.MethodDelete, "/admin/artworks/"+ids[1], nil, token)
	apitest.WantStatus(t, w, http.StatusOK)

	w = apitest.DoJSON(t, r, http.MethodGet, "/artworks", nil, "")
	var list galleryapi.ListArtworksResponse
	apitest.Decode(t, w, &list)
	if len(list.Artworks) != 2 {
		t.Fatalf("expected 2 artworks after delete, got %d", len(list.Artworks))
	}
	for _, a := range list.Artworks {
		if a.ID == ids[1] {
			t.Fatal("deleted artwork still present")
		}
	}
}

func TestDeleteArtworkUnknownID(t *testing.T) {
	r := apitest.Setup(t)
	token := apitest.AdminToken(t)

	w := apitest.DoJSON(t, r, http.MethodDelete, "/admin/artworks/does-not-exist", nil, token)
	apitest.WantStatus(t, w, http.StatusNotFound)
}
