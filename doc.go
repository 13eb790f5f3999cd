/*
Package ofxparser loads OFX documents into a generic XML tree.

OFX 1.x files are SGML and routinely omit end tags, declare charsets that do not match their
content and carry characters a strict XML parser rejects. The loader decodes the document,
splits off the header, sanitizes the body, closes the tags left open on each line and finally
parses the result, reporting every well-formedness error when that still fails.

	doc, err := ofxparser.LoadFromPath("statement.ofx")
	if err != nil {
		var failure *ofxparser.ParseFailure
		if errors.As(err, &failure) {
			for _, e := range failure.Errors {
				log.Print(e)
			}
		}
		return err
	}
	for _, txn := range xmlquery.Find(doc.Root, "//STMTTRN") {
		...
	}
*/
package ofxparser
