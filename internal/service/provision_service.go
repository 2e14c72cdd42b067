package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"qrmenu/internal/domain"

	"github.com/lib/pq"
)

// maxSlugAttempts bounds the uniqueness loop so concurrent signups cannot
// spin forever.
const maxSlugAttempts = 100

const fallbackSlug = "my-restaurant"

// Slugify derives a URL-safe slug: lowercase, runs of non-alphanumerics
// collapsed to single hyphens, edges trimmed, at most 60 characters.
func Slugify(input string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(input) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	slug := b.String()
	if len(slug) > 60 {
		slug = strings.Trim(slug[:60], "-")
	}
	return slug
}

type ProvisionService struct {
	restaurants RestaurantRepository
	members     MemberRepository
}

func NewProvisionService(restaurants RestaurantRepository, members MemberRepository) *ProvisionService {
	return &ProvisionService{restaurants: restaurants, members: members}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// EnsureDefaultRestaurant returns the slug of the user's restaurant,
// creating one on first dashboard visit. An existing membership or owned
// restaurant is reused as-is.
func (s *ProvisionService) EnsureDefaultRestaurant(user domain.User) (string, error) {
	if slug, err := s.members.MemberSlug(user.ID); err != nil {
		return "", err
	} else if slug != "" {
		return slug, nil
	}

	if slug, err := s.restaurants.OwnedSlug(user.ID); err != nil {
		return "", err
	} else if slug != "" {
		return slug, nil
	}

	localPart := user.Email
	if at := strings.IndexByte(localPart, '@'); at >= 0 {
		localPart = localPart[:at]
	}
	base := Slugify(localPart)
	if user.Email == "" {
		base = Slugify(strconv.Itoa(user.ID))
	}
	if base == "" {
		base = fallbackSlug
	}

	name := "My Restaurant"
	if localPart != "" {
		name = localPart + " Restaurant"
	}

	slug := base
	var rest *domain.Restaurant
	for attempt := 1; ; attempt++ {
		if attempt > maxSlugAttempts {
			return "", &domain.ProvisioningError{BaseSlug: base, Attempts: maxSlugAttempts}
		}

		exists, err := s.restaurants.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if exists {
			slug = fmt.Sprintf("%s-%d", base, attempt)
			continue
		}

		rest = &domain.Restaurant{
			OwnerID:  user.ID,
			Name:     name,
			Slug:     slug,
			City:     "Lahore",
			IsActive: true,
		}
		err = s.restaurants.CreateRestaurant(rest)
		if err == nil {
			break
		}
		// Someone claimed the slug between the check and the insert; the
		// database constraint is the real safety net, so retry.
		if isUniqueViolation(err) {
			slug = fmt.Sprintf("%s-%d", base, attempt)
			continue
		}
		return "", err
	}

	// Membership failure leaves the restaurant without a recorded owner;
	// the row itself is still valid, so the slug is returned regardless.
	if err := s.members.AddMember(rest.ID, user.ID, "owner"); err != nil {
		log.Printf("[provision] failed to add owner membership for restaurant %d: %v", rest.ID, err)
	}

	return slug, nil
}

var _ ProvisionServiceInterface = (*ProvisionService)(nil)
