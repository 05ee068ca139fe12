// Package models defines the core domain records for VendorUnity.
//
// # Records
//
//   - VendorRecord: a registered street vendor; vendors sharing a GroupCode
//     form a buying group
//   - SupplierRecord: a registered wholesale supplier
//   - LineItem: one product/quantity/price entry in a group's in-session order
//   - GroupOrder: a submitted group order, visible to suppliers
//
// # Design principles
//
//  1. Records are written once: registration creates them, deletion removes
//     them. The only rewrite is creator promotion, which re-saves the whole
//     vendor list.
//  2. Groups are derived, not stored: the set of vendors with the same
//     GroupCode is the group. The member with IsGroupCreator=true supplies
//     the group's display area and creator name.
//  3. All monetary amounts are int64 paise. Floating point never touches
//     money; presentation layers own rounding and formatting.
package models
