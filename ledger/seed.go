// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielhkuo/council-vote/models"
)

// DefaultCandidates is the demo ticket list loaded by Seed.
var DefaultCandidates = []models.NewCandidate{
	{
		PartyName:              "Partai Harapan Jaya",
		PresidentName:          "Andi Pratama",
		PresidentPhotoURL:      "https://picsum.photos/seed/candidate1/400/400",
		PresidentPhotoHint:     "male student portrait",
		VicePresidentName:      "Rina Wati",
		VicePresidentPhotoURL:  "https://picsum.photos/seed/vicecandidate1/400/400",
		VicePresidentPhotoHint: "female student portrait",
		Vision:                 "Mewujudkan OSIS yang inovatif, transparan, dan menjadi wadah aspirasi seluruh siswa.",
		Mission:                "1. Mengadakan program kerja berbasis teknologi.\n2. Meningkatkan komunikasi antara siswa dan pihak sekolah.\n3. Mengembangkan bakat dan minat siswa melalui ekstrakurikuler.",
	},
	{
		PartyName:              "Partai Bintang Prestasi",
		PresidentName:          "Siti Aisyah",
		PresidentPhotoURL:      "https://picsum.photos/seed/candidate2/400/400",
		PresidentPhotoHint:     "female student portrait",
		VicePresidentName:      "Eko Prasetyo",
		VicePresidentPhotoURL:  "https://picsum.photos/seed/vicecandidate2/400/400",
		VicePresidentPhotoHint: "male student portrait",
		Vision:                 "Menjadikan sekolah sebagai lingkungan yang nyaman, kreatif, dan berprestasi.",
		Mission:                "1. Menyelenggarakan acara-acara yang meningkatkan kebersamaan.\n2. Membuat program 'Kotak Suara Siswa' untuk menampung ide dan keluhan.\n3. Bekerja sama dengan komite sekolah untuk meningkatkan fasilitas.",
	},
	{
		PartyName:              "Partai Generasi Emas",
		PresidentName:          "Budi Santoso",
		PresidentPhotoURL:      "https://picsum.photos/seed/candidate3/400/400",
		PresidentPhotoHint:     "student photo",
		VicePresidentName:      "Lina Marlina",
		VicePresidentPhotoURL:  "https://picsum.photos/seed/vicecandidate3/400/400",
		VicePresidentPhotoHint: "student photo",
		Vision:                 "OSIS yang solid, sportif, dan mampu menginspirasi siswa untuk berprestasi.",
		Mission:                "1. Mengaktifkan kembali liga olahraga antar kelas.\n2. Mengadakan workshop dan seminar inspiratif secara rutin.\n3. Mempererat hubungan antar angkatan melalui kegiatan bersama.",
	},
}

// DefaultVoters is the demo voter list loaded by Seed.
var DefaultVoters = []models.NewVoter{
	{NIS: "12345", Name: "Anta Massora", Class: "11", AvatarURL: "https://picsum.photos/seed/student1/100/100"},
}

// Seed inserts candidates and voters into whichever of the two collections
// is empty. Existing data is never touched.
func (l *Ledger) Seed(ctx context.Context, candidates []models.NewCandidate, voters []models.NewVoter) (seededCandidates, seededVoters int, err error) {
	for _, c := range candidates {
		if err := validateCandidate(c); err != nil {
			return 0, 0, err
		}
	}
	records := make([]models.Voter, 0, len(voters))
	for _, in := range voters {
		v, err := l.newVoter(in)
		if err != nil {
			return 0, 0, err
		}
		records = append(records, v)
	}

	err = l.update(ctx, "seed", func(tx Tx) error {
		seededCandidates, seededVoters = 0, 0

		existing, err := tx.Candidates()
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			for _, in := range candidates {
				c := models.Candidate{ID: uuid.NewString(), Version: 1, CreatedAt: l.now().UTC()}
				applyCandidate(&c, in)
				if err := tx.InsertCandidate(c); err != nil {
					return err
				}
				seededCandidates++
			}
		}

		existingVoters, err := tx.Voters()
		if err != nil {
			return err
		}
		if len(existingVoters) == 0 {
			for _, v := range records {
				err := tx.InsertVoter(v)
				if errors.Is(err, ErrDuplicate) {
					return ErrDuplicateVoter
				}
				if err != nil {
					return err
				}
				seededVoters++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	slog.Info("seed check complete", "candidates", seededCandidates, "voters", seededVoters)
	return seededCandidates, seededVoters, nil
}
