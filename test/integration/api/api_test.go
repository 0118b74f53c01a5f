// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

//go:build integration

package api_test

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/contentone/contentone/internal/auth"
	"github.com/contentone/contentone/internal/catalog"
)

var tokenInLink = regexp.MustCompile(`update-password/([0-9a-f-]{36})`)

type user struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type userResponse struct {
	User   *user        `json:"user"`
	Errors []fieldError `json:"errors"`
}

const (
	register = `mutation($o: UserInput!) { register(options: $o) { user { id email } errors { field message } } }`
	login    = `mutation($o: UserInput!) { login(options: $o) { user { id email } errors { field message } } }`
	me       = `{ me { id email } }`
)

func uniqueEmail() string {
	return fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8])
}

func credentials(email, password string) map[string]any {
	return map[string]any{"o": map[string]any{"firstName": "Test", "email": email, "password": password}}
}

var _ = Describe("Auth over PostgreSQL and Redis", func() {
	var (
		b     *browser
		email string
	)

	BeforeEach(func() {
		b = newBrowser()
		email = uniqueEmail()
		var res userResponse
		b.do(register, credentials(email, "secret"), "register", &res)
		Expect(res.Errors).To(BeEmpty())
		Expect(res.User.Email).To(Equal(email))
	})

	It("logs in, resolves me from the cookie, and logs out", func() {
		var res userResponse
		b.do(login, credentials(email, "secret"), "login", &res)
		Expect(res.User).NotTo(BeNil())

		var who *user
		b.do(me, nil, "me", &who)
		Expect(who).NotTo(BeNil())
		Expect(who.Email).To(Equal(email))

		var out bool
		b.do(`mutation { logout }`, nil, "logout", &out)
		Expect(out).To(BeTrue())

		who = nil
		b.do(me, nil, "me", &who)
		Expect(who).To(BeNil())
	})

	It("maps a duplicate email to the registered message", func() {
		var res userResponse
		b.do(register, credentials(email, "another"), "register", &res)
		Expect(res.User).To(BeNil())
		Expect(res.Errors).To(ConsistOf(fieldError{"email", auth.MsgUserAlreadyRegistered}))
	})

	It("rejects a direct insert that races past the existence check", func() {
		err := env.users.Create(env.ctx, &auth.User{Email: email, PasswordHash: "x"})
		Expect(err).To(MatchError(auth.ErrEmailTaken))
	})

	It("stores reset tokens in Redis with a 72 hour expiry and consumes them", func() {
		var sent bool
		b.do(`mutation($e: String!) { forgotPassword(email: $e) }`, map[string]any{"e": email}, "forgotPassword", &sent)
		Expect(sent).To(BeTrue())

		m := tokenInLink.FindStringSubmatch(env.mailer.last())
		Expect(m).To(HaveLen(2))
		token := m[1]

		ttl, err := env.redis.TTL(env.ctx, auth.ResetTokenKey(token)).Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(ttl).To(BeNumerically("~", 72*time.Hour, time.Minute))

		update := `mutation($t: String!, $p: String!) { updatePassword(token: $t, password: $p) { user { id } errors { field message } } }`
		var res userResponse
		b.do(update, map[string]any{"t": token, "p": "changed"}, "updatePassword", &res)
		Expect(res.User).NotTo(BeNil())

		exists, err := env.redis.Exists(env.ctx, auth.ResetTokenKey(token)).Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeZero())

		b.do(login, credentials(email, "changed"), "login", &res)
		Expect(res.User).NotTo(BeNil())
	})
})

var _ = Describe("Catalog over PostgreSQL", func() {
	var b *browser

	BeforeEach(func() {
		b = newBrowser()
		email := uniqueEmail()
		var res userResponse
		b.do(register, credentials(email, "secret"), "register", nil)
		b.do(login, credentials(email, "secret"), "login", &res)
		Expect(res.User).NotTo(BeNil())
	})

	It("creates categories and feeds and cascades deletes", func() {
		var created struct {
			Category *struct{ ID int64 }
			Errors   []fieldError
		}
		b.do(`mutation { createCategory(name: "Tech", description: "links") { category { id } errors { field message } } }`,
			nil, "createCategory", &created)
		Expect(created.Category).NotTo(BeNil())
		catID := created.Category.ID

		b.do(`mutation { createCategory(name: "Tech", description: "links") { category { id } errors { field message } } }`,
			nil, "createCategory", &created)
		Expect(created.Errors).To(ConsistOf(fieldError{"name", catalog.MsgCategoryExists}))

		var feed struct {
			Feed *struct {
				ID         string
				CategoryID int64
			}
		}
		b.do(`mutation($c: Int!) { createFeed(name: "Go", feedUrl: "https://go.dev/blog/feed.atom", categoryId: $c) { feed { id categoryId } } }`,
			map[string]any{"c": catID}, "createFeed", &feed)
		Expect(feed.Feed).NotTo(BeNil())
		Expect(feed.Feed.CategoryID).To(Equal(catID))
		feedID, err := strconv.ParseInt(feed.Feed.ID, 10, 64)
		Expect(err).NotTo(HaveOccurred())

		var del struct {
			Result  bool
			Message string
		}
		b.do(`mutation($c: Int!) { deleteCategory(id: $c) { result message } }`, map[string]any{"c": catID}, "deleteCategory", &del)
		Expect(del.Result).To(BeTrue())

		_, err = env.categories.Get(env.ctx, catID)
		Expect(err).To(MatchError(catalog.ErrNotFound))

		var read *struct{ ID string }
		b.do(`query($f: Int!) { readFeed(id: $f) { id } }`, map[string]any{"f": feedID}, "readFeed", &read)
		Expect(read).To(BeNil())
	})
})
