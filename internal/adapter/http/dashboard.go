package http

// dashboardHTML is the staff dashboard: stats cards plus an
// applications table with status filter buttons, refreshed every 30s
// from the JSON API.
const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Money Mornings - Admin Dashboard</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://cdn.tailwindcss.com"></script>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; }
    </style>
</head>
<body class="bg-gray-100">
    <div class="min-h-screen">
        <header class="bg-green-600 text-white shadow-lg">
            <div class="max-w-7xl mx-auto px-4 py-6">
                <h1 class="text-3xl font-bold">Money Mornings Empire - Admin Dashboard</h1>
                <p class="text-green-100 mt-2">Manage application submissions</p>
            </div>
        </header>

        <main class="max-w-7xl mx-auto px-4 py-8">
            <div id="stats" class="grid grid-cols-1 md:grid-cols-4 gap-6 mb-8">
                <!-- Stats will be loaded here -->
            </div>

            <div class="bg-white rounded-lg shadow-lg">
                <div class="px-6 py-4 border-b border-gray-200">
                    <h2 class="text-xl font-semibold text-gray-900">Recent Applications</h2>
                    <div class="mt-2 flex space-x-4">
                        <button onclick="loadApplications('all')" class="text-sm bg-green-500 text-white px-3 py-1 rounded">All</button>
                        <button onclick="loadApplications('pending')" class="text-sm bg-yellow-500 text-white px-3 py-1 rounded">Pending</button>
                        <button onclick="loadApplications('qualified')" class="text-sm bg-blue-500 text-white px-3 py-1 rounded">Qualified</button>
                        <button onclick="loadApplications('approved')" class="text-sm bg-green-600 text-white px-3 py-1 rounded">Approved</button>
                    </div>
                </div>
                <div id="applications" class="p-6">
                    <!-- Applications will be loaded here -->
                </div>
            </div>
        </main>
    </div>

    <script>
        function statCard(label, value, color) {
            return '<div class="bg-white p-6 rounded-lg shadow">' +
                '<h3 class="text-lg font-semibold text-gray-900">' + label + '</h3>' +
                '<p class="text-3xl font-bold ' + color + '">' + value + '</p>' +
                '</div>';
        }

        async function loadStats() {
            try {
                const response = await fetch('/api/applications/stats/summary');
                const stats = await response.json();

                document.getElementById('stats').innerHTML =
                    statCard('Total Applications', stats.total_applications, 'text-green-600') +
                    statCard('Pending', stats.pending_applications, 'text-yellow-600') +
                    statCard('Qualified', stats.qualified_applications, 'text-blue-600') +
                    statCard('Approved', stats.approved_applications, 'text-green-600');
            } catch (error) {
                console.error('Error loading stats:', error);
            }
        }

        function humanize(slug) {
            return slug.replace(/-/g, ' ').replace(/\b\w/g, function (l) { return l.toUpperCase(); });
        }

        function applicationRow(app) {
            const statusColor = {
                'pending': 'bg-yellow-100 text-yellow-800',
                'qualified': 'bg-blue-100 text-blue-800',
                'approved': 'bg-green-100 text-green-800',
                'rejected': 'bg-red-100 text-red-800'
            }[app.status] || 'bg-gray-100 text-gray-800';

            return '<tr>' +
                '<td class="px-6 py-4 whitespace-nowrap text-sm font-medium text-gray-900">' +
                app.first_name + ' ' + app.last_name + '</td>' +
                '<td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">' +
                '<a href="mailto:' + app.email + '" class="text-blue-600 hover:text-blue-800">' + app.email + '</a></td>' +
                '<td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">' + humanize(app.service_interest) + '</td>' +
                '<td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">' + (app.funding_amount || 'N/A') + '</td>' +
                '<td class="px-6 py-4 whitespace-nowrap">' +
                '<span class="px-2 inline-flex text-xs leading-5 font-semibold rounded-full ' + statusColor + '">' +
                app.status + '</span></td>' +
                '<td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">' +
                new Date(app.submission_date).toLocaleDateString() + '</td>' +
                '</tr>';
        }

        async function loadApplications(status = 'all') {
            try {
                const url = status === 'all' ? '/api/applications' : '/api/applications?status=' + status;
                const response = await fetch(url);
                const applications = await response.json();

                let html = '';
                if (applications.length === 0) {
                    html = '<p class="text-gray-500 text-center py-8">No applications found.</p>';
                } else {
                    const header = ['Name', 'Email', 'Service', 'Funding', 'Status', 'Date'].map(function (h) {
                        return '<th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">' + h + '</th>';
                    }).join('');

                    html = '<div class="overflow-x-auto">' +
                        '<table class="min-w-full divide-y divide-gray-200">' +
                        '<thead class="bg-gray-50"><tr>' + header + '</tr></thead>' +
                        '<tbody class="bg-white divide-y divide-gray-200">' +
                        applications.map(applicationRow).join('') +
                        '</tbody></table></div>';
                }

                document.getElementById('applications').innerHTML = html;
            } catch (error) {
                console.error('Error loading applications:', error);
                document.getElementById('applications').innerHTML =
                    '<p class="text-red-500 text-center py-8">Error loading applications.</p>';
            }
        }

        window.onload = function () {
            loadStats();
            loadApplications();
        };

        setInterval(function () {
            loadStats();
            loadApplications();
        }, 30000);
    </script>
</body>
</html>
`
