// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package catalog

// Messages returned to clients. The trailing periods and the odd grammar
// are part of the public contract.
const (
	MsgCategoryExists       = "category already exists"
	MsgCategoryNotFound     = "category does not exist"
	MsgCategoryGone         = "category does not exist."
	MsgUnauthorized         = "unauthorized."
	MsgCategoryDeleted      = "category deleted."
	MsgCategoryNotFoundFeed = "Category does not exists."
	MsgNoData               = "No data."
	MsgFeedURLInvalid       = "feed url is invalid"
	MsgFeedNotFound         = "feed does not exists."
)
