package service

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kode numerik 3 digit: "100".."999".
const (
	CodeMin = 100
	CodeMax = 999
)

// CodeAllocator memilih kode 3 digit untuk sebuah kelas.
// Dua implementasi: store-backed (atomik, unik di antara kode active kelas
// itu) dan random lokal (fallback TANPA jaminan unik antar request).
type CodeAllocator interface {
	Allocate(tx *gorm.DB, classID uuid.UUID) (string, error)
}

// StoreCodeAllocator minta Postgres memilih kode yang belum terpakai,
// dalam transaksi yang sama dengan insert — atomik di level store.
type StoreCodeAllocator struct{}

func (StoreCodeAllocator) Allocate(tx *gorm.DB, classID uuid.UUID) (string, error) {
	var code string
	err := tx.Raw(`
		SELECT n::text FROM generate_series(?, ?) AS n
		WHERE n::text NOT IN (
			SELECT class_codes_code FROM class_codes
			WHERE class_codes_class_id = ? AND class_codes_status = 'active'
		)
		ORDER BY random() LIMIT 1
	`, CodeMin, CodeMax, classID).Scan(&code).Error
	if err != nil {
		return "", err
	}
	if code == "" {
		return "", fmt.Errorf("allocator: tidak ada kode tersisa untuk kelas %s", classID)
	}
	return code, nil
}

// RandomCodeAllocator: undian lokal. Dipakai sebagai fallback saat
// allocator store gagal; tabrakan antar kelas tidak masalah, tabrakan
// di kelas yang sama dalam satu periode active adalah celah yang disadari.
type RandomCodeAllocator struct {
	Rand *rand.Rand // nil → pakai sumber global
}

func (a RandomCodeAllocator) Allocate(_ *gorm.DB, _ uuid.UUID) (string, error) {
	n := CodeMin
	if a.Rand != nil {
		n += a.Rand.Intn(CodeMax - CodeMin + 1)
	} else {
		n += rand.Intn(CodeMax - CodeMin + 1)
	}
	return fmt.Sprintf("%d", n), nil
}

// FallbackCodeAllocator mencoba Primary dulu; kalau error, recover lokal
// lewat Fallback supaya request tidak ikut gagal.
type FallbackCodeAllocator struct {
	Primary  CodeAllocator
	Fallback CodeAllocator
}

func (a FallbackCodeAllocator) Allocate(tx *gorm.DB, classID uuid.UUID) (string, error) {
	code, err := a.Primary.Allocate(tx, classID)
	if err == nil {
		return code, nil
	}
	log.Printf("[ALLOCATOR] primary gagal (%v), pakai undian lokal", err)
	return a.Fallback.Allocate(tx, classID)
}

// DefaultAllocator: store-backed dengan fallback random.
func DefaultAllocator() CodeAllocator {
	return FallbackCodeAllocator{
		Primary:  StoreCodeAllocator{},
		Fallback: RandomCodeAllocator{},
	}
}
