// Package report renders accumulated user records as CSV and HTML documents.
package report

import (
	"html/template"
	"io"

	"github.com/smolz/github-saml-report/internal/entities"
)

// Page carries everything the HTML template interpolates. FileStamp is the
// timestamp part shared by the report file names.
type Page struct {
	Title       string
	Records     []entities.UserRecord
	GeneratedAt string
	FileStamp   string
}

// WriteHTML renders the sortable report page. Record fields pass through
// contextual escaping, so provider-supplied values cannot inject markup.
func WriteHTML(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * {
            box-sizing: border-box;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif;
            margin: 20px;
            background-color: #f5f5f5;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            background-color: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h2 {
            color: #333;
            margin-bottom: 10px;
        }
        .stats {
            color: #666;
            margin-bottom: 20px;
            font-size: 14px;
        }
        table {
            border-collapse: collapse;
            width: 100%;
        }
        th {
            background-color: #90EE90;
            padding: 12px;
            text-align: left;
            cursor: pointer;
            user-select: none;
            font-weight: 600;
            position: relative;
        }
        th:hover {
            background-color: #7CCD7C;
        }
        th::after {
            content: ' ⇅';
            font-size: 0.8em;
            color: #666;
            opacity: 0.5;
        }
        th.sorted-asc::after {
            content: ' ▲';
            opacity: 1;
        }
        th.sorted-desc::after {
            content: ' ▼';
            opacity: 1;
        }
        td {
            background-color: #f9f9f9;
            padding: 10px 12px;
            border-bottom: 1px solid #e0e0e0;
        }
        tr:hover td {
            background-color: #f0f0f0;
        }
        tr:nth-child(even) td {
            background-color: #fafafa;
        }
        tr:nth-child(even):hover td {
            background-color: #f0f0f0;
        }
        .footer {
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #e0e0e0;
            color: #666;
            font-size: 14px;
        }
        @media (max-width: 768px) {
            body {
                margin: 10px;
            }
            .container {
                padding: 15px;
            }
            table {
                font-size: 14px;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <h2>{{.Title}}</h2>
        <div class="stats">Total users: {{len .Records}}</div>
        <table id="userTable">
            <thead>
                <tr>
                    <th onclick="sortTable(0)">Organization</th>
                    <th onclick="sortTable(1)">Username</th>
                    <th onclick="sortTable(2)">Email Address</th>
                </tr>
            </thead>
            <tbody>
{{- range .Records}}
                <tr><td>{{.Organization}}</td><td>{{.Username}}</td><td>{{.Email}}</td></tr>
{{- end}}
            </tbody>
        </table>
        <div class="footer">
            <p><strong>Last updated:</strong> {{.GeneratedAt}}</p>
            <p><strong>Report files:</strong> saml_users_{{.FileStamp}}.csv / saml_users_{{.FileStamp}}.html</p>
        </div>
    </div>

    <script>
        let currentSort = { column: -1, direction: 'asc' };

        function sortTable(columnIndex) {
            const table = document.getElementById("userTable");
            const tbody = table.querySelector("tbody");
            const rows = Array.from(tbody.querySelectorAll("tr"));
            const headers = table.querySelectorAll("th");

            // Determine sort direction
            let direction = 'asc';
            if (currentSort.column === columnIndex && currentSort.direction === 'asc') {
                direction = 'desc';
            }

            // Sort rows
            rows.sort((a, b) => {
                const aText = a.cells[columnIndex].textContent.trim().toLowerCase();
                const bText = b.cells[columnIndex].textContent.trim().toLowerCase();

                const comparison = aText.localeCompare(bText);
                return direction === 'asc' ? comparison : -comparison;
            });

            // Re-append sorted rows
            rows.forEach(row => tbody.appendChild(row));

            // Update header classes
            headers.forEach(header => {
                header.classList.remove('sorted-asc', 'sorted-desc');
            });
            headers[columnIndex].classList.add('sorted-' + direction);

            // Store current sort
            currentSort = { column: columnIndex, direction: direction };
        }
    </script>
</body>
</html>
`))
