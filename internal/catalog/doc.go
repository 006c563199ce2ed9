// Package catalog reads and writes Shopify product-export CSV files and
// decides which rows are eligible for translation. A file is an ordered
// sequence of 7-column records; the first record is the header and is
// carried through untouched.
package catalog
