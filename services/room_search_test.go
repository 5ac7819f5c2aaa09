package services

import (
	"testing"

	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
)

func sampleRooms() []models.Room {
	return []models.Room{
		{RoomId: 1, RoomName: "Habitación Simple Vista Jardín", Category: "simple", Description: "cama individual con vista al jardín"},
		{RoomId: 2, RoomName: "Habitación Doble Clásica", Category: "doble", Description: "dos camas, ideal para parejas"},
		{RoomId: 3, RoomName: "Suite Presidencial", Category: "suite", Description: "living privado y jacuzzi"},
	}
}

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Habitación", "habitacion"},
		{"  SUITE  ", "suite"},
		{"Jardín", "jardin"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeQuery(tc.in); got != tc.want {
			t.Errorf("NormalizeQuery(%q) = %q, esperaba %q", tc.in, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("suite", "suite"); got != 1.0 {
		t.Errorf("cadenas iguales: similitud %v, esperaba 1.0", got)
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("cadenas vacías: similitud %v, esperaba 1.0", got)
	}
	if got := Similarity("suite", "zzzzz"); got >= 0.5 {
		t.Errorf("cadenas distintas: similitud %v demasiado alta", got)
	}
	if got := Similarity("habitacion", "habitacion doble"); got <= 0 || got >= 1 {
		t.Errorf("similitud parcial fuera de rango: %v", got)
	}
}

func TestSearchRoomsConsultaVacia(t *testing.T) {
	rooms := sampleRooms()
	got := SearchRooms("   ", rooms)
	if len(got) != len(rooms) {
		t.Fatalf("consulta vacía devolvió %d habitaciones, esperaba %d", len(got), len(rooms))
	}
}

func TestSearchRoomsPorNombre(t *testing.T) {
	got := SearchRooms("suite presidencial", sampleRooms())
	if len(got) == 0 {
		t.Fatal("la búsqueda no devolvió resultados")
	}
	if got[0].RoomId != 3 {
		t.Errorf("primer resultado = %d, esperaba la suite (3)", got[0].RoomId)
	}
}

func TestSearchRoomsConAcentos(t *testing.T) {
	// "jardin" sin acento tiene que matchear la descripción "jardín"
	got := SearchRooms("habitacion simple vista jardin", sampleRooms())
	if len(got) == 0 {
		t.Fatal("la búsqueda sin acentos no devolvió resultados")
	}
	if got[0].RoomId != 1 {
		t.Errorf("primer resultado = %d, esperaba 1", got[0].RoomId)
	}
}

func TestSearchRoomsSinCoincidencias(t *testing.T) {
	got := SearchRooms("xyzqwkj", sampleRooms())
	if len(got) != 0 {
		t.Errorf("consulta sin relación devolvió %d resultados", len(got))
	}
}
