/*Package feature defines the genomic record kinds shared by the rest of
  the module: BED-style half-open intervals (Interval, Bed6, Bed12),
  one-based inclusive GTF records (Gtf), and paired BEDPE records
  (Bedpe), together with the chromosome natural-sort key and the total
  order used for sorting and index pruning.
  All record kinds are value types; derived state (attribute maps, the
  ordered Bedpe pair halves) is computed once at construction.
*/
package feature
