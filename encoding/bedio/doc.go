/*Package bedio reads and writes the tab-separated text forms of the
  record kinds in package feature: BED4, BED6, BED12, GTF and BEDPE.
  Readers accept io.Readers; the FromPath variants open local or remote
  paths through grailbio/base/file and transparently decompress gzip
  input.  Blank lines and #/track/browser header lines are skipped.
*/
package bedio
