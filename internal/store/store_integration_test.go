// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

//go:build integration

package store_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/contentone/contentone/internal/store"
)

var _ = Describe("Migrator", Ordered, func() {
	var migrator *store.Migrator

	BeforeAll(func() {
		var err error
		migrator, err = store.NewMigrator(databaseURL)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { Expect(migrator.Close()).To(Succeed()) })
	})

	It("starts at version zero with everything pending", func() {
		st, err := migrator.Status()
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Version).To(BeZero())
		Expect(st.Applied).To(BeEmpty())
		Expect(st.Pending).To(HaveLen(2))
	})

	It("applies every migration", func() {
		Expect(migrator.Up()).To(Succeed())

		st, err := migrator.Status()
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Version).To(Equal(uint(2)))
		Expect(st.Dirty).To(BeFalse())
		Expect(st.Pending).To(BeEmpty())
	})

	It("is idempotent", func() {
		Expect(migrator.Up()).To(Succeed())
	})

	It("steps back and forward", func() {
		Expect(migrator.Steps(-1)).To(Succeed())
		v, _, err := migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint(1)))

		Expect(migrator.Steps(1)).To(Succeed())
		v, _, err = migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint(2)))
	})

	It("keeps ids within the 32-bit GraphQL Int range", func(ctx SpecContext) {
		pool, err := store.Open(ctx, databaseURL, store.DefaultConnectOptions)
		Expect(err).NotTo(HaveOccurred())
		defer pool.Close()

		rows, err := pool.Query(ctx, `
			SELECT table_name || '.' || column_name, data_type
			FROM information_schema.columns
			WHERE table_schema = current_schema()
			  AND column_name IN ('id', 'user_id', 'category_id')
			  AND table_name IN ('users', 'categories', 'feeds')`)
		Expect(err).NotTo(HaveOccurred())
		defer rows.Close()

		types := map[string]string{}
		for rows.Next() {
			var column, dataType string
			Expect(rows.Scan(&column, &dataType)).To(Succeed())
			types[column] = dataType
		}
		Expect(rows.Err()).NotTo(HaveOccurred())
		Expect(types).To(HaveLen(5))
		for column, dataType := range types {
			Expect(dataType).To(Equal("integer"), column)
		}
	})

	It("enforces unique emails and cascades feed deletes", func(ctx SpecContext) {
		pool, err := store.Open(ctx, databaseURL, store.DefaultConnectOptions)
		Expect(err).NotTo(HaveOccurred())
		defer pool.Close()

		var userID, categoryID int64
		Expect(pool.QueryRow(ctx,
			`INSERT INTO users (email, password_hash) VALUES ('a@example.com', 'x') RETURNING id`).
			Scan(&userID)).To(Succeed())

		_, err = pool.Exec(ctx, `INSERT INTO users (email, password_hash) VALUES ('a@example.com', 'y')`)
		Expect(err).To(HaveOccurred())

		Expect(pool.QueryRow(ctx,
			`INSERT INTO categories (user_id, name, description) VALUES ($1, 'news', 'daily') RETURNING id`, userID).
			Scan(&categoryID)).To(Succeed())
		_, err = pool.Exec(ctx,
			`INSERT INTO feeds (category_id, name, feed_url) VALUES ($1, 'hn', 'https://news.ycombinator.com/rss')`, categoryID)
		Expect(err).NotTo(HaveOccurred())

		_, err = pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
		Expect(err).NotTo(HaveOccurred())

		var feeds int
		Expect(pool.QueryRow(ctx, `SELECT count(*) FROM feeds`).Scan(&feeds)).To(Succeed())
		Expect(feeds).To(BeZero())

		_, err = pool.Exec(ctx, `DELETE FROM users`)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rolls everything back", func() {
		Expect(migrator.Down()).To(Succeed())
		v, _, err := migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeZero())
	})
})

var _ = Describe("Open", func() {
	It("gives up on an unreachable database", func(ctx SpecContext) {
		_, err := store.Open(ctx, "postgres://nobody@127.0.0.1:1/none?connect_timeout=1",
			store.ConnectOptions{MaxRetries: 1, BaseDelay: 10 * time.Millisecond})
		Expect(err).To(HaveOccurred())
	})

	It("rejects a malformed URL", func() {
		_, err := store.Open(context.Background(), "postgres://%zz", store.DefaultConnectOptions)
		Expect(err).To(HaveOccurred())
	})
})
